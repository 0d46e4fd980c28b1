// Package isa defines the GFA256 instruction algebra: the eleven field
// instructions (spec.md §4.3), their operand shapes, and the bytecode codec
// that packs them into the host VM's code and data segments (spec.md §4.4).
package isa

import (
	"fmt"

	"github.com/orlovsky-labs/gfa256/fe"
)

// baseComplexity is the cost the executor advertises for a simple move or
// control-flow-shaped instruction. Arithmetic instructions (Fits, Neg, Add,
// Mul) cost 2x this (spec.md §4.3).
const baseComplexity = 1

// FieldInstr is the closed set of GFA256 field instructions. Each concrete
// type below implements it; the type switches in the codec and in the
// executor cover these eleven variants and return an error for anything
// else. Go does not check a type switch for exhaustiveness, so a missing
// case is found at run time, not at compile time.
type FieldInstr interface {
	fmt.Stringer

	// isFieldInstr is unexported so FieldInstr can only be implemented by
	// the eleven variants declared in this package.
	isFieldInstr()

	// SrcRegs returns the registers this instruction reads.
	SrcRegs() []Reg

	// DstRegs returns the registers this instruction writes.
	DstRegs() []Reg

	// CodeBytes is the number of bytes this instruction occupies in the
	// code segment — always 2 for every field instruction (spec.md §8
	// property 5).
	CodeBytes() int

	// ExtDataBytes is the number of bytes this instruction consumes from
	// the data segment — 32 for PutD, 0 for everything else.
	ExtDataBytes() int

	// Complexity is the cost the host's budget enforcer charges for this
	// instruction.
	Complexity() uint64
}

// Test checks whether src holds a value, setting CO accordingly.
type Test struct{ Src Reg }

// Clr sets dst to None.
type Clr struct{ Dst Reg }

// PutD loads an explicit 32-byte immediate into dst.
type PutD struct {
	Dst  Reg
	Data fe.Elem
}

// PutZ loads zero into dst.
type PutZ struct{ Dst Reg }

// PutV loads a small named constant into dst.
type PutV struct {
	Dst Reg
	Val ConstVal
}

// Fits tests whether src's value fits in the given bit-width.
type Fits struct {
	Src  Reg
	Bits Bits
}

// Mov copies src into dst, including an empty src.
type Mov struct{ Dst, Src Reg }

// Eq tests src1 and src2 for equality.
type Eq struct{ Src1, Src2 Reg }

// Neg computes dst = -src (mod q).
type Neg struct{ Dst, Src Reg }

// Add computes dstSrc += src (mod q).
type Add struct{ DstSrc, Src Reg }

// Mul computes dstSrc *= src (mod q).
type Mul struct{ DstSrc, Src Reg }

func (Test) isFieldInstr() {}
func (Clr) isFieldInstr()  {}
func (PutD) isFieldInstr() {}
func (PutZ) isFieldInstr() {}
func (PutV) isFieldInstr() {}
func (Fits) isFieldInstr() {}
func (Mov) isFieldInstr()  {}
func (Eq) isFieldInstr()   {}
func (Neg) isFieldInstr()  {}
func (Add) isFieldInstr()  {}
func (Mul) isFieldInstr()  {}

func (i Test) SrcRegs() []Reg { return []Reg{i.Src} }
func (Clr) SrcRegs() []Reg    { return nil }
func (PutD) SrcRegs() []Reg   { return nil }
func (PutZ) SrcRegs() []Reg   { return nil }
func (PutV) SrcRegs() []Reg   { return nil }
func (i Fits) SrcRegs() []Reg { return []Reg{i.Src} }
func (i Mov) SrcRegs() []Reg  { return []Reg{i.Src} }
func (i Eq) SrcRegs() []Reg   { return []Reg{i.Src1, i.Src2} }
func (i Neg) SrcRegs() []Reg  { return []Reg{i.Src} }
func (i Add) SrcRegs() []Reg  { return []Reg{i.DstSrc, i.Src} }
func (i Mul) SrcRegs() []Reg  { return []Reg{i.DstSrc, i.Src} }

func (Test) DstRegs() []Reg    { return nil }
func (i Clr) DstRegs() []Reg   { return []Reg{i.Dst} }
func (i PutD) DstRegs() []Reg  { return []Reg{i.Dst} }
func (i PutZ) DstRegs() []Reg  { return []Reg{i.Dst} }
func (i PutV) DstRegs() []Reg  { return []Reg{i.Dst} }
func (Fits) DstRegs() []Reg    { return nil }
func (i Mov) DstRegs() []Reg   { return []Reg{i.Dst} }
func (Eq) DstRegs() []Reg      { return nil }
func (i Neg) DstRegs() []Reg   { return []Reg{i.Dst} }
func (i Add) DstRegs() []Reg   { return []Reg{i.DstSrc} }
func (i Mul) DstRegs() []Reg   { return []Reg{i.DstSrc} }

func (Test) CodeBytes() int { return 2 }
func (Clr) CodeBytes() int  { return 2 }
func (PutD) CodeBytes() int { return 2 }
func (PutZ) CodeBytes() int { return 2 }
func (PutV) CodeBytes() int { return 2 }
func (Fits) CodeBytes() int { return 2 }
func (Mov) CodeBytes() int  { return 2 }
func (Eq) CodeBytes() int   { return 2 }
func (Neg) CodeBytes() int  { return 2 }
func (Add) CodeBytes() int  { return 2 }
func (Mul) CodeBytes() int  { return 2 }

func (Test) ExtDataBytes() int { return 0 }
func (Clr) ExtDataBytes() int  { return 0 }
func (PutD) ExtDataBytes() int { return 32 }
func (PutZ) ExtDataBytes() int { return 0 }
func (PutV) ExtDataBytes() int { return 0 }
func (Fits) ExtDataBytes() int { return 0 }
func (Mov) ExtDataBytes() int  { return 0 }
func (Eq) ExtDataBytes() int   { return 0 }
func (Neg) ExtDataBytes() int  { return 0 }
func (Add) ExtDataBytes() int  { return 0 }
func (Mul) ExtDataBytes() int  { return 0 }

func (Test) Complexity() uint64 { return baseComplexity }
func (Clr) Complexity() uint64  { return baseComplexity }
func (PutD) Complexity() uint64 { return baseComplexity }
func (PutZ) Complexity() uint64 { return baseComplexity }
func (PutV) Complexity() uint64 { return baseComplexity }
func (Fits) Complexity() uint64 { return 2 * baseComplexity }
func (Mov) Complexity() uint64  { return baseComplexity }
func (Eq) Complexity() uint64   { return baseComplexity }
func (Neg) Complexity() uint64  { return 2 * baseComplexity }
func (Add) Complexity() uint64  { return 2 * baseComplexity }
func (Mul) Complexity() uint64  { return 2 * baseComplexity }

func (i Test) String() string { return fmt.Sprintf("test     %s", i.Src) }
func (i Clr) String() string  { return fmt.Sprintf("clr      %s", i.Dst) }
func (i PutD) String() string { return fmt.Sprintf("putd     %s, %s", i.Dst, i.Data) }
func (i PutZ) String() string { return fmt.Sprintf("putz     %s", i.Dst) }
func (i PutV) String() string { return fmt.Sprintf("putv     %s, %s", i.Dst, i.Val) }
func (i Fits) String() string { return fmt.Sprintf("fits     %s, %s", i.Src, i.Bits) }
func (i Mov) String() string  { return fmt.Sprintf("mov      %s, %s", i.Dst, i.Src) }
func (i Eq) String() string   { return fmt.Sprintf("eq       %s, %s", i.Src1, i.Src2) }
func (i Neg) String() string  { return fmt.Sprintf("neg      %s, %s", i.Dst, i.Src) }
func (i Add) String() string  { return fmt.Sprintf("add      %s, %s", i.DstSrc, i.Src) }
func (i Mul) String() string  { return fmt.Sprintf("mul      %s, %s", i.DstSrc, i.Src) }
