package debugger

import (
	"fmt"
	"sync"

	"github.com/orlovsky-labs/gfa256/fe"
	"github.com/orlovsky-labs/gfa256/gfa"
)

// Watchpoint monitors one field register for a value change. GFA256 has no
// memory, so unlike the ARM debugger's watchpoints (which can target either
// a register or a memory address) there's only one kind here.
type Watchpoint struct {
	ID        int
	Register  gfa.Reg
	Enabled   bool
	HitCount  int
	lastValue fe.Elem
	lastKnown bool // whether lastValue reflects an actual snapshot yet
}

// WatchpointManager manages all watchpoints for a session.
type WatchpointManager struct {
	mu          sync.RWMutex
	watchpoints map[int]*Watchpoint
	nextID      int
}

// NewWatchpointManager creates an empty watchpoint manager.
func NewWatchpointManager() *WatchpointManager {
	return &WatchpointManager{
		watchpoints: make(map[int]*Watchpoint),
		nextID:      1,
	}
}

// AddWatchpoint adds a watchpoint on reg. Its baseline value is taken from
// core immediately, so the first CheckWatchpoints call won't spuriously fire
// on the register's existing value.
func (wm *WatchpointManager) AddWatchpoint(reg gfa.Reg, core *gfa.Core) *Watchpoint {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	wp := &Watchpoint{
		ID:       wm.nextID,
		Register: reg,
		Enabled:  true,
	}
	if v, ok := core.Get(reg); ok {
		wp.lastValue = v
		wp.lastKnown = true
	}

	wm.watchpoints[wp.ID] = wp
	wm.nextID++
	return wp
}

// DeleteWatchpoint removes a watchpoint by ID.
func (wm *WatchpointManager) DeleteWatchpoint(id int) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	if _, exists := wm.watchpoints[id]; !exists {
		return fmt.Errorf("watchpoint %d not found", id)
	}
	delete(wm.watchpoints, id)
	return nil
}

// EnableWatchpoint enables a watchpoint by ID.
func (wm *WatchpointManager) EnableWatchpoint(id int) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	wp, exists := wm.watchpoints[id]
	if !exists {
		return fmt.Errorf("watchpoint %d not found", id)
	}
	wp.Enabled = true
	return nil
}

// DisableWatchpoint disables a watchpoint by ID.
func (wm *WatchpointManager) DisableWatchpoint(id int) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	wp, exists := wm.watchpoints[id]
	if !exists {
		return fmt.Errorf("watchpoint %d not found", id)
	}
	wp.Enabled = false
	return nil
}

// GetWatchpoint returns a watchpoint by ID, or nil.
func (wm *WatchpointManager) GetWatchpoint(id int) *Watchpoint {
	wm.mu.RLock()
	defer wm.mu.RUnlock()
	return wm.watchpoints[id]
}

// GetAllWatchpoints returns every watchpoint, in no particular order.
func (wm *WatchpointManager) GetAllWatchpoints() []*Watchpoint {
	wm.mu.RLock()
	defer wm.mu.RUnlock()

	result := make([]*Watchpoint, 0, len(wm.watchpoints))
	for _, wp := range wm.watchpoints {
		result = append(result, wp)
	}
	return result
}

// CheckWatchpoints scans every enabled watchpoint against core's current
// state and returns the first whose register's presence or value changed
// since the last check. A register flipping between empty and present
// counts as a change, same as its value changing while present.
func (wm *WatchpointManager) CheckWatchpoints(core *gfa.Core) (*Watchpoint, bool) {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	for _, wp := range wm.watchpoints {
		if !wp.Enabled {
			continue
		}

		v, ok := core.Get(wp.Register)
		changed := ok != wp.lastKnown || (ok && wp.lastKnown && !v.Equal(wp.lastValue))
		wp.lastValue = v
		wp.lastKnown = ok

		if changed {
			wp.HitCount++
			return wp, true
		}
	}
	return nil, false
}

// Clear removes every watchpoint.
func (wm *WatchpointManager) Clear() {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	wm.watchpoints = make(map[int]*Watchpoint)
}

// Count returns the number of watchpoints.
func (wm *WatchpointManager) Count() int {
	wm.mu.RLock()
	defer wm.mu.RUnlock()
	return len(wm.watchpoints)
}
