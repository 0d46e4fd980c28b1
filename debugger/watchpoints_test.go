package debugger

import (
	"testing"

	"github.com/orlovsky-labs/gfa256/fe"
	"github.com/orlovsky-labs/gfa256/gfa"
)

func TestAddWatchpointSeedsBaseline(t *testing.T) {
	core := gfa.NewCore(gfa.Order25519)
	core.Put(gfa.E1, fe.FromUint64(7))

	wm := NewWatchpointManager()
	wm.AddWatchpoint(gfa.E1, core)

	if _, changed := wm.CheckWatchpoints(core); changed {
		t.Error("a freshly added watchpoint must not fire before any change")
	}
}

func TestWatchpointFiresOnValueChange(t *testing.T) {
	core := gfa.NewCore(gfa.Order25519)
	core.Put(gfa.E1, fe.FromUint64(1))

	wm := NewWatchpointManager()
	wp := wm.AddWatchpoint(gfa.E1, core)

	core.Put(gfa.E1, fe.FromUint64(2))
	hit, changed := wm.CheckWatchpoints(core)
	if !changed || hit.ID != wp.ID {
		t.Fatalf("expected watchpoint %d to fire, got %v, %v", wp.ID, hit, changed)
	}
	if hit.HitCount != 1 {
		t.Errorf("expected HitCount 1, got %d", hit.HitCount)
	}
}

func TestWatchpointFiresOnClear(t *testing.T) {
	core := gfa.NewCore(gfa.Order25519)
	core.Put(gfa.E2, fe.FromUint64(5))

	wm := NewWatchpointManager()
	wm.AddWatchpoint(gfa.E2, core)

	core.Clr(gfa.E2)
	if _, changed := wm.CheckWatchpoints(core); !changed {
		t.Error("clearing a watched register should count as a change")
	}
}

func TestWatchpointFiresWhenPreviouslyEmptyBecomesPresent(t *testing.T) {
	core := gfa.NewCore(gfa.Order25519)

	wm := NewWatchpointManager()
	wm.AddWatchpoint(gfa.E3, core)

	core.Put(gfa.E3, fe.Zero())
	if _, changed := wm.CheckWatchpoints(core); !changed {
		t.Error("a previously empty register becoming present should count as a change")
	}
}

func TestDisabledWatchpointDoesNotFire(t *testing.T) {
	core := gfa.NewCore(gfa.Order25519)
	core.Put(gfa.E1, fe.FromUint64(1))

	wm := NewWatchpointManager()
	wp := wm.AddWatchpoint(gfa.E1, core)
	_ = wm.DisableWatchpoint(wp.ID)

	core.Put(gfa.E1, fe.FromUint64(2))
	if _, changed := wm.CheckWatchpoints(core); changed {
		t.Error("a disabled watchpoint must never fire")
	}
}

func TestDeleteWatchpoint(t *testing.T) {
	core := gfa.NewCore(gfa.Order25519)
	wm := NewWatchpointManager()
	wp := wm.AddWatchpoint(gfa.E1, core)

	if err := wm.DeleteWatchpoint(wp.ID); err != nil {
		t.Fatalf("DeleteWatchpoint: %v", err)
	}
	if wm.Count() != 0 {
		t.Errorf("expected 0 watchpoints, got %d", wm.Count())
	}
	if err := wm.DeleteWatchpoint(wp.ID); err == nil {
		t.Error("expected error deleting an already-deleted watchpoint")
	}
}

func TestClearWatchpoints(t *testing.T) {
	core := gfa.NewCore(gfa.Order25519)
	wm := NewWatchpointManager()
	wm.AddWatchpoint(gfa.E1, core)
	wm.AddWatchpoint(gfa.E2, core)
	wm.Clear()
	if wm.Count() != 0 {
		t.Errorf("expected 0 watchpoints after Clear, got %d", wm.Count())
	}
}
