// Package fe implements the 256-bit finite-field element type used by the
// GFA256 instruction-set extension. A value is always an unsigned integer;
// the "field" it belongs to (its modulus q) is a property of the register
// file that holds it, not of the element itself — see package gfa.
package fe

import (
	"math/big"
)

// byteLen is the fixed little-endian wire width of a field element.
const byteLen = 32

// safeBoundBits is the bit position above which an externally supplied value
// is rejected outright, before it ever reaches a register's `< q` check:
// testing the top 5 bits of a 256-bit value is a cheap, constant-shape
// screen. The bound lies below all three named field orders in package gfa
// (each is larger than 2^251), so values in [2^251, q) are rejected on the
// untrusted path too; the trusted constructors accept them.
const safeBoundBits = 251

// Elem is an immutable 256-bit unsigned field element. The zero value is the
// element 0, the same value Zero returns.
type Elem struct {
	v big.Int
}

// Zero returns the additive identity.
func Zero() Elem {
	return Elem{}
}

// FromUint64 builds an element from a 64-bit unsigned integer, zero-extended.
func FromUint64(n uint64) Elem {
	var e Elem
	e.v.SetUint64(n)
	return e
}

// FromUint128 builds an element from a 128-bit unsigned integer given as
// (hi, lo) 64-bit halves, zero-extended.
func FromUint128(hi, lo uint64) Elem {
	var e Elem
	e.v.SetUint64(hi)
	e.v.Lsh(&e.v, 64)
	var loPart big.Int
	loPart.SetUint64(lo)
	e.v.Or(&e.v, &loPart)
	return e
}

// FromBigInt builds an element directly from a big.Int, trusting the caller
// that the value is non-negative and fits in 256 bits. This is an internal,
// trusted constructor — it performs no range check — used by arithmetic
// results and literal decoding inside the trusted path.
func FromBigInt(n *big.Int) Elem {
	var e Elem
	e.v.Set(n)
	return e
}

// Int returns the element's value as a big.Int. The returned value is a
// copy; mutating it does not affect the element.
func (e Elem) Int() *big.Int {
	var cp big.Int
	cp.Set(&e.v)
	return &cp
}

// Equal reports whether two elements hold the same integer value.
func (e Elem) Equal(o Elem) bool {
	return e.v.Cmp(&o.v) == 0
}

// IsZero reports whether the element is zero.
func (e Elem) IsZero() bool {
	return e.v.Sign() == 0
}

// BitLen returns the number of bits required to represent the element,
// i.e. the position of its highest set bit plus one (0 for the zero value).
func (e Elem) BitLen() int {
	return e.v.BitLen()
}

// Bytes returns the element encoded as 32 little-endian bytes.
func (e Elem) Bytes() [32]byte {
	var out [32]byte
	be := e.v.Bytes() // big-endian, no leading zeros, at most 32 bytes
	for i, b := range be {
		out[len(be)-1-i] = b
	}
	return out
}

// FromBytesTrusted decodes 32 little-endian bytes into an element without
// enforcing the untrusted-input safety bound. Used by internal callers that
// already know the source is trusted (e.g. re-decoding a value this package
// itself produced).
func FromBytesTrusted(b [32]byte) Elem {
	be := make([]byte, 32)
	for i, c := range b {
		be[31-i] = c
	}
	var e Elem
	e.v.SetBytes(be)
	return e
}

// FromBytes decodes 32 little-endian bytes coming from an untrusted source
// (wire, file, user input). It enforces the safety bound described in
// spec.md §4.1: any value with one of its top 5 bits set (2^251 or larger)
// is rejected with a RangeError. This also rejects valid elements in
// [2^251, q) of the named field orders, whose primes all exceed 2^251.
func FromBytes(b [32]byte) (Elem, error) {
	e := FromBytesTrusted(b)
	if e.BitLen() > safeBoundBits {
		return Elem{}, &RangeError{BitLen: e.BitLen()}
	}
	return e, nil
}
