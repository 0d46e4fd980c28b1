package host

import "fmt"

// ReservedInstr is an opaque stand-in for any opcode outside GFA256's
// declared range (0x40..=0x45, spec.md §4.4). The field ISA never
// interprets it — isa.Decode wraps the raw opcode byte in one so the host's
// own reserved-instruction fallback can take over (spec.md §6, §7). Encode
// takes field instructions only, so it is never written back out.
type ReservedInstr struct {
	Opcode uint8
}

func (r ReservedInstr) String() string {
	return fmt.Sprintf("reserved 0x%02X", r.Opcode)
}

// CtrlInstr is an opaque stand-in for the host VM's own control-flow
// instructions (branches, calls, halts — explicitly out of scope per
// spec.md §1). GFA256 never decodes or executes control semantics itself,
// and its codec does not produce a CtrlInstr: isa.Decode wraps every opcode
// outside the field range as a ReservedInstr.
type CtrlInstr struct {
	Opcode uint8
	Raw    []byte
}

func (c CtrlInstr) String() string {
	return fmt.Sprintf("ctrl 0x%02X", c.Opcode)
}
