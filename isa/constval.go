package isa

import "github.com/orlovsky-labs/gfa256/fe"

// ConstVal enumerates the small constants PutV can load into a register
// (spec.md §4.3), 2-bit encoded.
type ConstVal uint8

const (
	Val1       ConstVal = 0
	ValU64Max  ConstVal = 1
	ValU128Max ConstVal = 2
	ValFeMAX   ConstVal = 3
)

func (v ConstVal) String() string {
	switch v {
	case Val1:
		return "1"
	case ValU64Max:
		return "u64::MAX"
	case ValU128Max:
		return "u128::MAX"
	case ValFeMAX:
		return "q-1"
	default:
		return "?"
	}
}

// Code returns the 2-bit encoding of the constant.
func (v ConstVal) Code() uint8 {
	return uint8(v) & 0x3
}

// ConstValFromCode decodes a 2-bit ConstVal code.
func ConstValFromCode(code uint8) ConstVal {
	return ConstVal(code & 0x3)
}

// Resolve decodes the constant to a field element. ValFeMAX (q-1) depends on
// the field order in force, so the caller supplies it; the other variants
// are order-independent (spec.md §4.3's ConstVal decoding table).
func (v ConstVal) Resolve(qMinus1 fe.Elem) fe.Elem {
	switch v {
	case Val1:
		return fe.FromUint64(1)
	case ValU64Max:
		return fe.FromUint64(^uint64(0))
	case ValU128Max:
		return fe.FromUint128(^uint64(0), ^uint64(0))
	case ValFeMAX:
		return qMinus1
	default:
		return fe.Zero()
	}
}
