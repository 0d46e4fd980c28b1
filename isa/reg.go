package isa

import "github.com/orlovsky-labs/gfa256/gfa"

// Reg is the register operand type used throughout the instruction algebra.
// It's the same type the register file (package gfa) is addressed by —
// there is exactly one register enumeration in GFA256, not a parallel one
// per layer.
type Reg = gfa.Reg

// Register mnemonics, re-exported for convenience so instruction-building
// code only needs to import package isa.
const (
	E1 = gfa.E1
	E2 = gfa.E2
	E3 = gfa.E3
	E4 = gfa.E4
	E5 = gfa.E5
	E6 = gfa.E6
	E7 = gfa.E7
	E8 = gfa.E8
	EA = gfa.EA
	EB = gfa.EB
	EC = gfa.EC
	ED = gfa.ED
	EE = gfa.EE
	EF = gfa.EF
	EG = gfa.EG
	EH = gfa.EH
)
