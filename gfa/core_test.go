package gfa_test

import (
	"math/big"
	"testing"

	"github.com/orlovsky-labs/gfa256/fe"
	"github.com/orlovsky-labs/gfa256/gfa"
)

func TestPutRejectsOutOfRange(t *testing.T) {
	c := gfa.NewCore(gfa.Order25519)
	defer func() {
		if recover() == nil {
			t.Fatal("expected Put to panic on value >= q")
		}
	}()
	c.Put(gfa.E1, fe.FromBigInt(gfa.Order25519.Q()))
}

func TestResetPreservesOrderClearsSlots(t *testing.T) {
	c := gfa.NewCore(gfa.OrderSECP)
	c.Put(gfa.E1, fe.FromUint64(42))
	c.Reset()
	if c.Test(gfa.E1) {
		t.Error("register should be empty after Reset")
	}
	if c.Order() != gfa.OrderSECP {
		t.Error("Reset must not change the field order")
	}
	// idempotent
	c.Reset()
	for r := gfa.E1; r <= gfa.EH; r++ {
		if c.Test(r) {
			t.Errorf("register %s not empty after idempotent Reset", r)
		}
	}
}

func TestEqvNoneNoneIsFail(t *testing.T) {
	c := gfa.NewCore(nil)
	if c.Eqv(gfa.E1, gfa.E2) {
		t.Error("Eqv(None, None) must be Fail")
	}
}

func TestEqvSomeSome(t *testing.T) {
	c := gfa.NewCore(nil)
	c.Put(gfa.E1, fe.FromUint64(7))
	c.Put(gfa.E2, fe.FromUint64(7))
	if !c.Eqv(gfa.E1, gfa.E2) {
		t.Error("Eqv(Some(7), Some(7)) must be Ok")
	}
	c.Put(gfa.E2, fe.FromUint64(8))
	if c.Eqv(gfa.E1, gfa.E2) {
		t.Error("Eqv(Some(7), Some(8)) must be Fail")
	}
}

func TestNegModEmptySrcFails(t *testing.T) {
	c := gfa.NewCore(nil)
	if c.NegMod(gfa.EF, gfa.EF) {
		t.Error("NegMod on empty src must return false")
	}
	if c.Test(gfa.EF) {
		t.Error("dst must remain empty on failed NegMod")
	}
}

func TestAddModOverflowCorrection(t *testing.T) {
	c := gfa.NewCore(gfa.Order25519)
	qMinus1 := new(big.Int).Sub(gfa.Order25519.Q(), big.NewInt(1))
	c.Put(gfa.E1, fe.FromBigInt(qMinus1))
	c.Put(gfa.E2, fe.FromUint64(1))
	if !c.AddMod(gfa.E1, gfa.E2) {
		t.Fatal("AddMod should succeed")
	}
	got, _ := c.Get(gfa.E1)
	if !got.IsZero() {
		t.Errorf("(q-1)+1 mod q = %s, want 0", got)
	}
}

func TestMulModFullPath(t *testing.T) {
	c := gfa.NewCore(gfa.Order25519)
	qMinus1 := new(big.Int).Sub(gfa.Order25519.Q(), big.NewInt(1))
	c.Put(gfa.E1, fe.FromBigInt(qMinus1))
	c.Put(gfa.E2, fe.FromBigInt(qMinus1))
	if !c.MulMod(gfa.E1, gfa.E2) {
		t.Fatal("MulMod should succeed")
	}
	got, _ := c.Get(gfa.E1)
	want := fe.FromUint64(1)
	if !got.Equal(want) {
		t.Errorf("(q-1)*(q-1) mod q = %s, want 1.fe", got)
	}
}

func TestAddMulMissingOperandFails(t *testing.T) {
	c := gfa.NewCore(nil)
	c.Put(gfa.E1, fe.FromUint64(1))
	if c.AddMod(gfa.E1, gfa.E2) {
		t.Error("AddMod with empty src must fail")
	}
	if c.MulMod(gfa.E1, gfa.E2) {
		t.Error("MulMod with empty src must fail")
	}
}

func TestFitsBoundary(t *testing.T) {
	c := gfa.NewCore(nil)
	c.Put(gfa.E1, fe.FromUint64(255))
	fits, present := c.Fits(gfa.E1, 8)
	if !present || !fits {
		t.Error("255 must fit in 8 bits")
	}
	c.Put(gfa.E1, fe.FromUint64(256))
	fits, present = c.Fits(gfa.E1, 8)
	if !present || fits {
		t.Error("256 must not fit in 8 bits")
	}
}

func TestFitsEmptyRegister(t *testing.T) {
	c := gfa.NewCore(nil)
	_, present := c.Fits(gfa.E1, 8)
	if present {
		t.Error("Fits on an empty register must report not-present")
	}
}

func TestMovCopiesIncludingNone(t *testing.T) {
	c := gfa.NewCore(nil)
	c.Put(gfa.E1, fe.FromUint64(9))
	c.Mov(gfa.E2, gfa.E1)
	got, ok := c.Get(gfa.E2)
	if !ok || !got.Equal(fe.FromUint64(9)) {
		t.Fatal("Mov did not copy value")
	}
	c.Mov(gfa.E2, gfa.E3) // E3 is empty
	if c.Test(gfa.E2) {
		t.Error("Mov from an empty source must clear the destination")
	}
}

func TestAllOrdersConstructCore(t *testing.T) {
	for _, o := range []*gfa.FieldOrder{gfa.Order25519, gfa.OrderSECP, gfa.OrderSTARK} {
		c := gfa.NewCore(o)
		if c.Order().Name != o.Name {
			t.Errorf("order mismatch for %s", o.Name)
		}
	}
}

func TestRegisterRoundTripsThroughCode(t *testing.T) {
	for r := gfa.E1; r <= gfa.EH; r++ {
		if gfa.RegFromCode(r.Code()) != r {
			t.Errorf("register code round trip failed for %s", r)
		}
	}
}

func TestRegisterBankPartition(t *testing.T) {
	for r := gfa.E1; r <= gfa.E8; r++ {
		if r.Code()&0x8 != 0 {
			t.Errorf("register %s in first bank must have high bit clear", r)
		}
	}
	for r := gfa.EA; r <= gfa.EH; r++ {
		if r.Code()&0x8 == 0 {
			t.Errorf("register %s in second bank must have high bit set", r)
		}
	}
}
