package gfa

import (
	"fmt"
	"strings"

	"github.com/orlovsky-labs/gfa256/fe"
)

// Reg identifies one of the 16 field registers. It's defined here (rather
// than in package isa) because the register file is addressed by it
// directly; package isa re-exports it for instruction operands.
type Reg uint8

// The 16 field registers, partitioned into two banks of 8 by the high bit of
// their 4-bit code (spec.md §4.3): E1..E8 = 0000..0111, EA..EH = 1000..1111.
const (
	E1 Reg = iota
	E2
	E3
	E4
	E5
	E6
	E7
	E8
	EA
	EB
	EC
	ED
	EE
	EF
	EG
	EH
	numRegs = 16
)

var regNames = [numRegs]string{
	"E1", "E2", "E3", "E4", "E5", "E6", "E7", "E8",
	"EA", "EB", "EC", "ED", "EE", "EF", "EG", "EH",
}

// String returns the register's mnemonic, e.g. "E1" or "EF".
func (r Reg) String() string {
	if int(r) >= numRegs {
		return fmt.Sprintf("E?%d", r)
	}
	return regNames[r]
}

// Code returns the register's 4-bit encoding (spec.md §4.3).
func (r Reg) Code() uint8 {
	return uint8(r)
}

// RegFromCode decodes a 4-bit register code produced by Code.
func RegFromCode(code uint8) Reg {
	return Reg(code & 0xF)
}

// Bytes reports the register-width the host's accounting interface
// advertises for a field register: 16 bytes, even though the value actually
// stored is a 32-byte fe.Elem. This mismatch is inherited from the original
// source's host-VM Register trait, which models every register as a
// 128-bit-wide storage unit for budget accounting; GFA256 mirrors whatever
// width the host API requires rather than "fixing" it, per spec.md §9's
// open question on register-width advertisement.
func (r Reg) Bytes() uint16 {
	return 16
}

// Core is the GFA256 register file: a fixed field order FQ and 16 optional
// field-element slots. None of its methods allocate beyond what the
// underlying fe.Elem / big.Int arithmetic requires for the values it holds.
type Core struct {
	order *FieldOrder
	slots [numRegs]*fe.Elem
}

// NewCore constructs a register file over the given field order. A nil
// order selects the default (25519, spec.md §3).
func NewCore(order *FieldOrder) *Core {
	if order == nil {
		order = DefaultOrder()
	}
	return &Core{order: order}
}

// Order returns the field order (FQ) this core was constructed with. FQ is
// fixed at construction and never mutated (spec.md §3).
func (c *Core) Order() *FieldOrder {
	return c.order
}

// Get performs a pure read of a register slot.
func (c *Core) Get(r Reg) (fe.Elem, bool) {
	s := c.slots[r]
	if s == nil {
		return fe.Elem{}, false
	}
	return *s, true
}

// Put installs a value into a register slot. It panics if v >= q: this is a
// programmer error (an internal precondition violation, spec.md §4.2, §7).
// The codec does not check PutD immediates against q, so an out-of-range
// constant embedded in a program is caught by this panic.
func (c *Core) Put(r Reg, v fe.Elem) {
	if v.Int().Cmp(c.order.Q()) >= 0 {
		panic(fmt.Sprintf("gfa: Put(%s): value %s is not less than field order %s", r, v, c.order.Name))
	}
	cp := v
	c.slots[r] = &cp
}

// Clr clears a register slot, setting it to None.
func (c *Core) Clr(r Reg) {
	c.slots[r] = nil
}

// Reset clears every register slot. FQ is unchanged.
func (c *Core) Reset() {
	for i := range c.slots {
		c.slots[i] = nil
	}
}

// Test reports whether a register slot holds a value.
func (c *Core) Test(r Reg) bool {
	return c.slots[r] != nil
}

// String renders the register file the way the original source's Debug
// implementation does: the field order followed by one line per register,
// either its hex value or "~" for an empty slot.
func (c *Core) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "FQ %X#h\n", c.order.Q())
	for i, s := range c.slots {
		fmt.Fprintf(&b, "%s ", Reg(i))
		if s == nil {
			b.WriteString("~\n")
		} else {
			fmt.Fprintf(&b, "%s\n", s.String())
		}
	}
	return b.String()
}
