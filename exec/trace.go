package exec

import (
	"fmt"
	"strings"

	"github.com/orlovsky-labs/gfa256/isa"
)

// Entry is one recorded step of execution: the instruction executed and the
// control-register state immediately after it. Proof systems consuming a
// GFA256 trace need this per-step snapshot to constrain the circuit, not
// just the final state (spec.md's framing in §1/§2).
type Entry struct {
	PC      uint64
	Instr   isa.FieldInstr
	CO      bool
	CKAfter bool
}

func (e Entry) String() string {
	return fmt.Sprintf("%04d  %-28s  CO=%-5v CK=%v", e.PC, e.Instr, e.CO, e.CKAfter)
}

// Trace accumulates an Entry per executed instruction, in order. Attaching
// one to an Executor turns on trace recording; leaving Executor.Trace nil
// skips it entirely, at zero cost, for callers (like the debugger's single
// stepper) that only care about current state.
type Trace struct {
	Entries []Entry
}

// Record appends one step to the trace.
func (t *Trace) Record(pc uint64, instr isa.FieldInstr, co, ck bool) {
	t.Entries = append(t.Entries, Entry{PC: pc, Instr: instr, CO: co, CKAfter: ck})
}

// String renders the trace as one line per entry, in execution order.
func (t *Trace) String() string {
	var b strings.Builder
	for _, e := range t.Entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
