// Package analysis provides offline, pre-execution lint over a decoded
// GFA256 program: dead stores, unused registers, and use-before-def
// reads. None of it touches gfa.Core or host.ControlRegisters — it walks
// the instruction list isa.FieldInstr already exposes through SrcRegs and
// DstRegs (spec.md §4.5's suggested use cases for that introspection).
package analysis

import (
	"fmt"
	"sort"

	"github.com/orlovsky-labs/gfa256/isa"
)

// Level is the severity of a Finding. Every GFA256 lint finding is
// advisory: none of them indicate the program cannot run, only that it
// probably doesn't do what its author intended.
type Level int

const (
	// Info flags a pattern worth a second look but rarely wrong in
	// practice (use-before-def: reading a register nobody's written in
	// this program is valid — it reads as None — but is usually a typo).
	Info Level = iota
	// Warning flags a pattern that's almost always a mistake (a store
	// that's overwritten before anything reads it; a register computed but
	// never consumed).
	Warning
)

func (l Level) String() string {
	if l == Warning {
		return "warning"
	}
	return "info"
}

// Finding is a single lint result, anchored to the instruction index
// (position in the decoded program) it concerns.
type Finding struct {
	Level   Level
	Index   int
	Reg     isa.Reg
	Message string
	Code    string
}

func (f Finding) String() string {
	return fmt.Sprintf("instr %d: %s: %s [%s]", f.Index, f.Level, f.Message, f.Code)
}

// Lint walks prog once and reports dead stores, unused registers, and
// use-before-def reads. Findings are returned sorted by instruction index.
func Lint(prog []isa.FieldInstr) []Finding {
	var findings []Finding

	findings = append(findings, checkDeadStores(prog)...)
	findings = append(findings, checkUnusedRegisters(prog)...)
	findings = append(findings, checkUseBeforeDef(prog)...)

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Index < findings[j].Index
	})
	return findings
}

// checkDeadStores flags a write whose value is clobbered (written or
// cleared again) before any later instruction reads it.
func checkDeadStores(prog []isa.FieldInstr) []Finding {
	var findings []Finding
	// lastWrite[r] is the index of the most recent instruction that wrote r
	// without it having been read since.
	lastWrite := make(map[isa.Reg]int)

	for i, instr := range prog {
		for _, r := range instr.SrcRegs() {
			delete(lastWrite, r)
		}
		for _, r := range instr.DstRegs() {
			if prev, ok := lastWrite[r]; ok {
				findings = append(findings, Finding{
					Level:   Warning,
					Index:   prev,
					Reg:     r,
					Message: fmt.Sprintf("%s written here is overwritten at instruction %d before being read", r, i),
					Code:    "DEAD_STORE",
				})
			}
			lastWrite[r] = i
		}
	}
	return findings
}

// checkUnusedRegisters flags a register written at least once but never
// read anywhere in the program.
func checkUnusedRegisters(prog []isa.FieldInstr) []Finding {
	written := make(map[isa.Reg]int)
	read := make(map[isa.Reg]bool)

	for i, instr := range prog {
		for _, r := range instr.DstRegs() {
			if _, ok := written[r]; !ok {
				written[r] = i
			}
		}
		for _, r := range instr.SrcRegs() {
			read[r] = true
		}
	}

	var findings []Finding
	for r, idx := range written {
		if !read[r] {
			findings = append(findings, Finding{
				Level:   Warning,
				Index:   idx,
				Reg:     r,
				Message: fmt.Sprintf("%s is written but never read by this program", r),
				Code:    "UNUSED_REGISTER",
			})
		}
	}
	return findings
}

// checkUseBeforeDef flags a read of a register that no earlier instruction
// in the program wrote. This is valid GFA256 (the register reads as None),
// so it's reported at Info level rather than Warning.
func checkUseBeforeDef(prog []isa.FieldInstr) []Finding {
	written := make(map[isa.Reg]bool)
	seen := make(map[isa.Reg]bool)
	var findings []Finding

	for i, instr := range prog {
		for _, r := range instr.SrcRegs() {
			if !written[r] && !seen[r] {
				findings = append(findings, Finding{
					Level:   Info,
					Index:   i,
					Reg:     r,
					Message: fmt.Sprintf("%s is read before any instruction in this program writes it (reads as empty)", r),
					Code:    "USE_BEFORE_DEF",
				})
				seen[r] = true
			}
		}
		for _, r := range instr.DstRegs() {
			written[r] = true
		}
	}
	return findings
}
