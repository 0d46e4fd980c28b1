package gfa

import (
	"math/big"

	"github.com/orlovsky-labs/gfa256/fe"
)

// Microcode for finite-field arithmetic (spec.md §4.2). Every operation here
// is a pure function of its register-file operands; none suspend, none
// allocate beyond the big.Int arithmetic the result requires, and each
// completes in bounded time.

// Fits reports whether a register's value fits in the given number of bits,
// i.e. whether v>>bits == 0. It returns false in the second return value if
// the register is empty.
func (c *Core) Fits(r Reg, bits int) (fits bool, present bool) {
	v, ok := c.Get(r)
	if !ok {
		return false, false
	}
	var shifted big.Int
	shifted.Rsh(v.Int(), uint(bits))
	return shifted.Sign() == 0, true
}

// Mov copies src into dst, including an empty src (which clears dst). The
// state of src is unaffected.
func (c *Core) Mov(dst, src Reg) {
	if v, ok := c.Get(src); ok {
		c.Put(dst, v)
	} else {
		c.Clr(dst)
	}
}

// Eqv reports whether src1 and src2 hold equal values. Two empty registers
// are NOT considered equal (spec.md §4.2, §8, §9): the equality predicate is
// defined only over present values, so a missing value never compares equal
// to itself in a trace.
func (c *Core) Eqv(src1, src2 Reg) bool {
	a, aok := c.Get(src1)
	b, bok := c.Get(src2)
	if !aok || !bok {
		return false
	}
	return a.Equal(b)
}

// NegMod computes dst = q - src (mod q). It returns false if src is empty,
// leaving dst untouched.
func (c *Core) NegMod(dst, src Reg) bool {
	a, ok := c.Get(src)
	if !ok {
		return false
	}
	q := c.order.Q()
	var res big.Int
	res.Sub(q, a.Int())
	res.Mod(&res, q)
	c.Put(dst, fe.FromBigInt(&res))
	return true
}

// AddMod computes dstSrc = (dstSrc + src) mod q. Both operands must be
// present; it returns false (leaving dstSrc untouched) otherwise.
//
// The addition is carried out over unbounded big.Int arithmetic, so there is
// no fixed-width wraparound to correct for the way a native 256-bit adder
// would need to (spec.md §4.2's "overflow correction" rationale describes
// the fixed-width case; math/big sidesteps it by construction, while
// preserving the same modular result).
func (c *Core) AddMod(dstSrc, src Reg) bool {
	a, aok := c.Get(dstSrc)
	b, bok := c.Get(src)
	if !aok || !bok {
		return false
	}
	q := c.order.Q()
	var sum big.Int
	sum.Add(a.Int(), b.Int())
	sum.Mod(&sum, q)
	c.Put(dstSrc, fe.FromBigInt(&sum))
	return true
}

// MulMod computes dstSrc = (dstSrc * src) mod q via a widened intermediate
// product, matching the widen-multiply-reduce-narrow shape spec.md §4.2
// mandates (512-bit intermediate in a fixed-width implementation;
// big.Int.Mul widens automatically here, but the algorithmic shape — full
// product, then a single modular reduction — is preserved exactly).
func (c *Core) MulMod(dstSrc, src Reg) bool {
	a, aok := c.Get(dstSrc)
	b, bok := c.Get(src)
	if !aok || !bok {
		return false
	}
	q := c.order.Q()
	var product big.Int
	product.Mul(a.Int(), b.Int())
	product.Mod(&product, q)
	c.Put(dstSrc, fe.FromBigInt(&product))
	return true
}
