// Package exec implements the GFA256 executor: dispatching a decoded
// instruction against a live register file and the host's control
// registers, and reporting the next step to the host scheduler
// (spec.md §4.5, §5).
package exec

import (
	"fmt"

	"github.com/orlovsky-labs/gfa256/fe"
	"github.com/orlovsky-labs/gfa256/gfa"
	"github.com/orlovsky-labs/gfa256/host"
	"github.com/orlovsky-labs/gfa256/isa"
)

// Step is the outcome the executor hands back to the host scheduler after
// one instruction (spec.md §4.5 points 3-4). The host's own halt-on-CK
// policy is the sole authority on whether FailContinue should actually stop
// the program — the executor never halts on its own.
type Step int

const (
	// Advance indicates the instruction completed without an arithmetic
	// operand failure; the host should proceed to the next instruction.
	Advance Step = iota

	// FailContinue indicates an arithmetic instruction consumed an empty
	// register. CK has been set to Fail. Execution can still continue —
	// it's the host's choice whether to halt.
	FailContinue
)

func (s Step) String() string {
	if s == FailContinue {
		return "fail-continue"
	}
	return "advance"
}

// Executor dispatches FieldInstr values against a gfa.Core. It holds no
// state of its own beyond optional diagnostics (Trace, Statistics) — the
// core register file and the host's control registers are supplied per
// call, exactly as spec.md §5 describes ("a pure function of (instruction,
// register file, host control registers)").
type Executor struct {
	Trace      *Trace
	Statistics *Statistics
}

// NewExecutor returns an Executor with no diagnostics enabled.
func NewExecutor() *Executor {
	return &Executor{}
}

// Step executes one field instruction against core, updating ctrl's CO/CK
// per spec.md §4.3's per-instruction table, and returns the resulting step.
func (ex *Executor) Step(pc uint64, instr isa.FieldInstr, core *gfa.Core, ctrl host.ControlRegisters) (Step, error) {
	step, err := ex.dispatch(instr, core, ctrl)
	if err != nil {
		return Advance, err
	}

	if ex.Statistics != nil {
		ex.Statistics.Record(instr)
	}
	if ex.Trace != nil {
		ex.Trace.Record(pc, instr, ctrl.CO(), ctrl.CK())
	}

	return step, nil
}

func (ex *Executor) dispatch(instr isa.FieldInstr, core *gfa.Core, ctrl host.ControlRegisters) (Step, error) {
	switch i := instr.(type) {
	case isa.Test:
		ok := core.Test(i.Src)
		ctrl.SetCO(ok)
		if !ok {
			return Advance, nil
		}
		return Advance, nil

	case isa.Clr:
		core.Clr(i.Dst)
		return Advance, nil

	case isa.PutD:
		core.Put(i.Dst, i.Data)
		return Advance, nil

	case isa.PutZ:
		core.Put(i.Dst, fe.Zero())
		return Advance, nil

	case isa.PutV:
		qMinus1 := qMinus1(core)
		core.Put(i.Dst, i.Val.Resolve(qMinus1))
		return Advance, nil

	case isa.Fits:
		fits, present := core.Fits(i.Src, i.Bits.Len())
		if !present {
			// spec.md §9's canonical resolution of the fits-on-empty open
			// question: both CO and CK fail, without halting the program.
			ctrl.SetCO(false)
			ctrl.FailCK()
			return FailContinue, nil
		}
		ctrl.SetCO(fits)
		return Advance, nil

	case isa.Mov:
		core.Mov(i.Dst, i.Src)
		return Advance, nil

	case isa.Eq:
		ctrl.SetCO(core.Eqv(i.Src1, i.Src2))
		return Advance, nil

	case isa.Neg:
		if !core.NegMod(i.Dst, i.Src) {
			ctrl.FailCK()
			return FailContinue, nil
		}
		return Advance, nil

	case isa.Add:
		if !core.AddMod(i.DstSrc, i.Src) {
			ctrl.FailCK()
			return FailContinue, nil
		}
		return Advance, nil

	case isa.Mul:
		if !core.MulMod(i.DstSrc, i.Src) {
			ctrl.FailCK()
			return FailContinue, nil
		}
		return Advance, nil

	default:
		return Advance, fmt.Errorf("exec: unknown field instruction type %T", instr)
	}
}

// qMinus1 computes q-1 for the core's field order, used to resolve
// isa.ValFeMAX.
func qMinus1(core *gfa.Core) fe.Elem {
	q := core.Order().Q()
	one := fe.FromUint64(1)
	var diff = q
	diff.Sub(diff, one.Int())
	return fe.FromBigInt(diff)
}
