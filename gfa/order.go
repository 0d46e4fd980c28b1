// Package gfa implements the GFA256 field-arithmetic register file and its
// microcode: the live state an executing program operates on, parameterized
// by a prime field order, plus the modular operations the ISA's arithmetic
// instructions compile down to.
package gfa

import "math/big"

// FieldOrder names a prime modulus q that a Core is constructed over.
type FieldOrder struct {
	Name string
	q    big.Int
}

// Q returns the order's modulus. The returned value is a copy.
func (o *FieldOrder) Q() *big.Int {
	var cp big.Int
	cp.Set(&o.q)
	return &cp
}

func mustOrder(name, hex string) *FieldOrder {
	q, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		panic("gfa: invalid field order literal for " + name)
	}
	return &FieldOrder{Name: name, q: *q}
}

// Known fixed prime orders (spec.md §3). These are selectable but not
// restricted — NewCustomOrder admits any prime.
var (
	// Order25519 is 2^255 - 19, the order used by Curve25519/Ed25519. This
	// is the default order when none is specified (spec.md §3).
	Order25519 = mustOrder("25519", "7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed")

	// OrderSECP is 2^256 - 2^32 - 977, the order used by secp256k1.
	OrderSECP = mustOrder("secp", "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")

	// OrderSTARK is 2^251 + 17*2^192 + 1, the order used by STARK-friendly
	// curves.
	OrderSTARK = mustOrder("stark", "800000000000011000000000000000000000000000000000000000000000001")
)

// NewCustomOrder builds a FieldOrder around an arbitrary prime q. The caller
// is responsible for q actually being prime; GFA256 does not verify this
// (checking primality has no bearing on the arithmetic microcode's
// correctness and would needlessly slow down construction).
func NewCustomOrder(name string, q *big.Int) *FieldOrder {
	var cp big.Int
	cp.Set(q)
	return &FieldOrder{Name: name, q: cp}
}

// DefaultOrder returns the default field order (25519) used when a Core is
// constructed without an explicit order.
func DefaultOrder() *FieldOrder {
	return Order25519
}
