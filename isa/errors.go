package isa

import "fmt"

// BytecodeError reports a codec-level integrity failure: an instruction type
// Encode does not know, or a SET-class discriminator not covered by the
// discriminator table (spec.md §4.4, §7). A segment that runs out of bytes
// mid-instruction is reported as host.ErrEOF, not as a BytecodeError.
type BytecodeError struct {
	Opcode        uint8
	Discriminator uint8
	Reason        string
}

func (e *BytecodeError) Error() string {
	return fmt.Sprintf("isa: bytecode error at opcode 0x%02X (discriminator 0x%X): %s", e.Opcode, e.Discriminator, e.Reason)
}
