package isa

import "github.com/orlovsky-labs/gfa256/host"

// Instr is the three-way tagged wrapper spec.md §9 describes: polymorphism
// between the field ISA, the host's own control ISA, and reserved opcodes
// is expressed here rather than through inheritance, and dispatched at the
// codec/executor boundary. Exactly one field is non-nil/non-zero.
type Instr struct {
	Field    FieldInstr
	Ctrl     *host.CtrlInstr
	Reserved *host.ReservedInstr
}

// FromField wraps a field instruction.
func FromField(i FieldInstr) Instr { return Instr{Field: i} }

// FromCtrl wraps a host control instruction.
func FromCtrl(i host.CtrlInstr) Instr { return Instr{Ctrl: &i} }

// FromReserved wraps a reserved opcode.
func FromReserved(i host.ReservedInstr) Instr { return Instr{Reserved: &i} }

func (i Instr) String() string {
	switch {
	case i.Field != nil:
		return i.Field.String()
	case i.Ctrl != nil:
		return i.Ctrl.String()
	case i.Reserved != nil:
		return i.Reserved.String()
	default:
		return "<empty instr>"
	}
}
