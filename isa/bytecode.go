package isa

import (
	"github.com/orlovsky-labs/gfa256/fe"
	"github.com/orlovsky-labs/gfa256/host"
)

// Opcode class bytes (spec.md §4.4). Six contiguous bytes starting at 0x40.
const (
	ClassSET uint8 = 0x40
	ClassMOV uint8 = 0x41
	ClassEQ  uint8 = 0x42
	ClassNEG uint8 = 0x43
	ClassADD uint8 = 0x44
	ClassMUL uint8 = 0x45
)

// OpRangeLo and OpRangeHi bound the field ISA's opcode range; anything
// outside is delegated to the host's reserved-instruction handler
// (spec.md §4.4).
const (
	OpRangeLo = ClassSET
	OpRangeHi = ClassMUL
)

// SET discriminator nibble values (spec.md §4.4).
const (
	discTest = 0x0
	discClr  = 0x1
	discPutD = 0x2
	discPutZ = 0x3
	discPutV = 0x4 // + 2-bit ConstVal, occupies 0x4..0x7
	discFits = 0x8 // + 3-bit Bits, occupies 0x8..0xF
)

// Encode packs a single field instruction into the code segment (and the
// data segment, for PutD) via m. Every instruction occupies exactly 2 code
// bytes, matching spec.md §8 property 5.
func Encode(instr FieldInstr, m host.Marshaller) error {
	switch i := instr.(type) {
	case Test:
		return encodeSet(m, discTest, i.Src.Code())
	case Clr:
		return encodeSet(m, discClr, i.Dst.Code())
	case PutD:
		if err := encodeSet(m, discPutD, i.Dst.Code()); err != nil {
			return err
		}
		return m.WriteBlock32(i.Data.Bytes())
	case PutZ:
		return encodeSet(m, discPutZ, i.Dst.Code())
	case PutV:
		return encodeSet(m, discPutV|i.Val.Code(), i.Dst.Code())
	case Fits:
		return encodeSet(m, discFits|i.Bits.Code(), i.Src.Code())
	case Mov:
		return encodeRegPair(m, ClassMOV, i.Src.Code(), i.Dst.Code())
	case Eq:
		return encodeRegPair(m, ClassEQ, i.Src2.Code(), i.Src1.Code())
	case Neg:
		return encodeRegPair(m, ClassNEG, i.Src.Code(), i.Dst.Code())
	case Add:
		return encodeRegPair(m, ClassADD, i.Src.Code(), i.DstSrc.Code())
	case Mul:
		return encodeRegPair(m, ClassMUL, i.Src.Code(), i.DstSrc.Code())
	default:
		return &BytecodeError{Reason: "unknown field instruction type"}
	}
}

func encodeSet(m host.Marshaller, discriminator, reg uint8) error {
	if err := m.WriteBits(ClassSET, 8); err != nil {
		return err
	}
	if err := m.WriteNibble(reg); err != nil {
		return err
	}
	return m.WriteNibble(discriminator)
}

func encodeRegPair(m host.Marshaller, class uint8, hiReg, loReg uint8) error {
	if err := m.WriteBits(class, 8); err != nil {
		return err
	}
	if err := m.WriteNibble(hiReg); err != nil {
		return err
	}
	return m.WriteNibble(loReg)
}

// Decode reads the next instruction from m's code (and, for PutD, data)
// segment. If the opcode byte falls outside the field ISA's declared range
// (0x40..0x45), it's returned wrapped as a host.ReservedInstr for the host's
// own dispatch to handle (spec.md §4.4).
func Decode(m host.Marshaller) (Instr, error) {
	opcode, err := m.ReadBits(8)
	if err != nil {
		return Instr{}, err
	}
	if opcode < OpRangeLo || opcode > OpRangeHi {
		return FromReserved(host.ReservedInstr{Opcode: opcode}), nil
	}

	hi, err := m.ReadNibble()
	if err != nil {
		return Instr{}, err
	}
	lo, err := m.ReadNibble()
	if err != nil {
		return Instr{}, err
	}

	switch opcode {
	case ClassSET:
		return decodeSet(m, opcode, hi, lo)
	case ClassMOV:
		return FromField(Mov{Dst: regFromNibble(lo), Src: regFromNibble(hi)}), nil
	case ClassEQ:
		return FromField(Eq{Src1: regFromNibble(lo), Src2: regFromNibble(hi)}), nil
	case ClassNEG:
		return FromField(Neg{Dst: regFromNibble(lo), Src: regFromNibble(hi)}), nil
	case ClassADD:
		return FromField(Add{DstSrc: regFromNibble(lo), Src: regFromNibble(hi)}), nil
	case ClassMUL:
		return FromField(Mul{DstSrc: regFromNibble(lo), Src: regFromNibble(hi)}), nil
	default:
		// Unreachable: opcode was already range-checked above.
		return Instr{}, &BytecodeError{Opcode: opcode, Reason: "opcode not in field ISA range"}
	}
}

func decodeSet(m host.Marshaller, opcode, reg, disc uint8) (Instr, error) {
	switch {
	case disc == discTest:
		return FromField(Test{Src: regFromNibble(reg)}), nil
	case disc == discClr:
		return FromField(Clr{Dst: regFromNibble(reg)}), nil
	case disc == discPutD:
		data, err := m.ReadBlock32()
		if err != nil {
			return Instr{}, err
		}
		// The codec does not enforce < q here (spec.md §4.4): the untrusted
		// safe bound fe.FromBytes checks is below every supported prime, so
		// a legitimate constant in [2^251, q) would be wrongly rejected at
		// decode time. The executor's put enforces the real precondition.
		v := fe.FromBytesTrusted(data)
		return FromField(PutD{Dst: regFromNibble(reg), Data: v}), nil
	case disc == discPutZ:
		return FromField(PutZ{Dst: regFromNibble(reg)}), nil
	case disc >= discPutV && disc < discFits:
		return FromField(PutV{Dst: regFromNibble(reg), Val: ConstValFromCode(disc - discPutV)}), nil
	case disc >= discFits:
		return FromField(Fits{Src: regFromNibble(reg), Bits: BitsFromCode(disc - discFits)}), nil
	default:
		return Instr{}, &BytecodeError{Opcode: opcode, Discriminator: disc, Reason: "reserved SET discriminator"}
	}
}

func regFromNibble(n uint8) Reg {
	return Reg(n & 0xF)
}
