package exec

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/orlovsky-labs/gfa256/isa"
)

// MnemonicStats tracks how often one instruction shape ran and how much
// complexity budget it consumed in total.
type MnemonicStats struct {
	Mnemonic   string
	Count      uint64
	Complexity uint64
}

// Statistics accumulates per-instruction-type counts and total complexity
// spend over a run, in the spirit of the teacher's performance counters —
// scaled down to what a complexity-budgeted field VM actually needs: no
// branch/memory/hot-path tracking, since GFA256 has neither.
type Statistics struct {
	Enabled bool

	TotalInstructions uint64
	TotalComplexity   uint64

	counts     map[string]uint64
	complexity map[string]uint64
}

// NewStatistics returns an enabled, empty Statistics.
func NewStatistics() *Statistics {
	return &Statistics{
		Enabled:    true,
		counts:     make(map[string]uint64),
		complexity: make(map[string]uint64),
	}
}

// Record tallies one executed instruction.
func (s *Statistics) Record(instr isa.FieldInstr) {
	if !s.Enabled {
		return
	}
	if s.counts == nil {
		s.counts = make(map[string]uint64)
		s.complexity = make(map[string]uint64)
	}
	mnemonic := mnemonicOf(instr)
	s.TotalInstructions++
	s.TotalComplexity += instr.Complexity()
	s.counts[mnemonic]++
	s.complexity[mnemonic] += instr.Complexity()
}

// mnemonicOf extracts the bare mnemonic (first word) from an instruction's
// String(), so statistics key on instruction shape rather than operands.
func mnemonicOf(instr isa.FieldInstr) string {
	s := instr.String()
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

// TopInstructions returns mnemonic breakdowns sorted by descending count. n
// <= 0 returns all of them.
func (s *Statistics) TopInstructions(n int) []MnemonicStats {
	out := make([]MnemonicStats, 0, len(s.counts))
	for m, c := range s.counts {
		out = append(out, MnemonicStats{Mnemonic: m, Count: c, Complexity: s.complexity[m]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Mnemonic < out[j].Mnemonic
	})
	if n > 0 && n < len(out) {
		return out[:n]
	}
	return out
}

// ExportJSON writes the statistics as a JSON document.
func (s *Statistics) ExportJSON(w io.Writer) error {
	data := map[string]interface{}{
		"total_instructions": s.TotalInstructions,
		"total_complexity":   s.TotalComplexity,
		"breakdown":          s.TopInstructions(0),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// String renders a short human-readable summary.
func (s *Statistics) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "instructions: %d    complexity: %d\n", s.TotalInstructions, s.TotalComplexity)
	for _, m := range s.TopInstructions(0) {
		fmt.Fprintf(&b, "  %-8s %8d  (complexity %d)\n", m.Mnemonic, m.Count, m.Complexity)
	}
	return b.String()
}
