package isa_test

import (
	"testing"

	"github.com/orlovsky-labs/gfa256/fe"
	"github.com/orlovsky-labs/gfa256/host"
	"github.com/orlovsky-labs/gfa256/isa"
)

func roundTrip(t *testing.T, instr isa.FieldInstr) isa.Instr {
	t.Helper()
	m := host.NewBitMarshallerForWrite()
	if err := isa.Encode(instr, m); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(m.Code()) != instr.CodeBytes() {
		t.Fatalf("encoded %d code bytes, want %d", len(m.Code()), instr.CodeBytes())
	}
	if len(m.Data()) != instr.ExtDataBytes() {
		t.Fatalf("encoded %d data bytes, want %d", len(m.Data()), instr.ExtDataBytes())
	}
	rm := host.NewBitMarshaller(m.Code(), m.Data())
	decoded, err := isa.Decode(rm)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return decoded
}

func TestInstructionRoundTrips(t *testing.T) {
	cases := []isa.FieldInstr{
		isa.Test{Src: isa.E3},
		isa.Clr{Dst: isa.EA},
		isa.PutD{Dst: isa.E1, Data: fe.FromUint64(0xABCDEF)},
		isa.PutZ{Dst: isa.E4},
		isa.PutV{Dst: isa.E2, Val: isa.ValFeMAX},
		isa.Fits{Src: isa.EF, Bits: isa.Bits64},
		isa.Mov{Dst: isa.E5, Src: isa.EB},
		isa.Eq{Src1: isa.E6, Src2: isa.EC},
		isa.Neg{Dst: isa.E7, Src: isa.ED},
		isa.Add{DstSrc: isa.E8, Src: isa.EE},
		isa.Mul{DstSrc: isa.EG, Src: isa.EH},
	}
	for _, c := range cases {
		got := roundTrip(t, c)
		if got.Field == nil {
			t.Fatalf("decoded instr has no field variant for %v", c)
		}
		if got.Field.String() != c.String() {
			t.Errorf("round trip mismatch: got %q want %q", got.Field.String(), c.String())
		}
	}
}

func TestCodeByteLenAlwaysTwo(t *testing.T) {
	cases := []isa.FieldInstr{
		isa.Test{Src: isa.E1}, isa.Clr{Dst: isa.E1}, isa.PutZ{Dst: isa.E1},
		isa.PutV{Dst: isa.E1, Val: isa.Val1}, isa.Fits{Src: isa.E1, Bits: isa.Bits8},
		isa.Mov{Dst: isa.E1, Src: isa.E2}, isa.Eq{Src1: isa.E1, Src2: isa.E2},
		isa.Neg{Dst: isa.E1, Src: isa.E2}, isa.Add{DstSrc: isa.E1, Src: isa.E2},
		isa.Mul{DstSrc: isa.E1, Src: isa.E2},
	}
	for _, c := range cases {
		if c.CodeBytes() != 2 {
			t.Errorf("%v: CodeBytes() = %d, want 2", c, c.CodeBytes())
		}
	}
}

func TestOnlyPutDHasDataSegmentFootprint(t *testing.T) {
	if (isa.PutD{}).ExtDataBytes() != 32 {
		t.Error("PutD must consume 32 data-segment bytes")
	}
	others := []isa.FieldInstr{
		isa.Test{}, isa.Clr{}, isa.PutZ{}, isa.PutV{}, isa.Fits{},
		isa.Mov{}, isa.Eq{}, isa.Neg{}, isa.Add{}, isa.Mul{},
	}
	for _, o := range others {
		if o.ExtDataBytes() != 0 {
			t.Errorf("%T: ExtDataBytes() = %d, want 0", o, o.ExtDataBytes())
		}
	}
}

func TestReservedOpcodeDelegatesToHost(t *testing.T) {
	m := host.NewBitMarshaller([]byte{0xFF, 0x00}, nil)
	decoded, err := isa.Decode(m)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Reserved == nil || decoded.Reserved.Opcode != 0xFF {
		t.Fatalf("expected reserved opcode 0xFF, got %+v", decoded)
	}
}

func TestComplexityWeights(t *testing.T) {
	base := isa.Mov{}.Complexity()
	doubled := []isa.FieldInstr{isa.Fits{}, isa.Neg{}, isa.Add{}, isa.Mul{}}
	for _, d := range doubled {
		if d.Complexity() != 2*base {
			t.Errorf("%T: Complexity() = %d, want %d", d, d.Complexity(), 2*base)
		}
	}
	simple := []isa.FieldInstr{isa.Test{}, isa.Clr{}, isa.PutD{}, isa.PutZ{}, isa.PutV{}, isa.Mov{}, isa.Eq{}}
	for _, s := range simple {
		if s.Complexity() != base {
			t.Errorf("%T: Complexity() = %d, want %d", s, s.Complexity(), base)
		}
	}
}
