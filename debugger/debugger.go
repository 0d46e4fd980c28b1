package debugger

import (
	"fmt"
	"strings"

	"github.com/orlovsky-labs/gfa256/analysis"
	"github.com/orlovsky-labs/gfa256/exec"
	"github.com/orlovsky-labs/gfa256/gfa"
	"github.com/orlovsky-labs/gfa256/host"
	"github.com/orlovsky-labs/gfa256/isa"
)

// Debugger holds everything a gfadbg session needs: the decoded program, the
// live register file and control registers it executes against, and the
// usual debugger apparatus (breakpoints, watchpoints, history).
type Debugger struct {
	Program []isa.FieldInstr
	Core    *gfa.Core
	Ctrl    *host.Registers
	Exec    *exec.Executor

	PC int // index into Program of the next instruction to execute

	Breakpoints *BreakpointManager
	Watchpoints *WatchpointManager
	History     *CommandHistory

	Running bool

	LastCommand string
	Output      strings.Builder
}

// NewDebugger constructs a Debugger over prog, with a fresh register file for
// the given field order (nil selects the default per spec.md §3).
func NewDebugger(prog []isa.FieldInstr, order *gfa.FieldOrder) *Debugger {
	return &Debugger{
		Program:     prog,
		Core:        gfa.NewCore(order),
		Ctrl:        host.NewRegisters(),
		Exec:        exec.NewExecutor(),
		Breakpoints: NewBreakpointManager(),
		Watchpoints: NewWatchpointManager(),
		History:     NewCommandHistory(),
	}
}

// ExecuteCommand parses and runs one debugger command line.
func (d *Debugger) ExecuteCommand(cmdLine string) error {
	cmdLine = strings.TrimSpace(cmdLine)
	if cmdLine == "" {
		cmdLine = d.LastCommand
	}
	if cmdLine != "" {
		d.History.Add(cmdLine)
		d.LastCommand = cmdLine
	}

	parts := strings.Fields(cmdLine)
	if len(parts) == 0 {
		return nil
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]
	return d.handleCommand(cmd, args)
}

func (d *Debugger) handleCommand(cmd string, args []string) error {
	switch cmd {
	case "run", "r":
		return d.cmdRun(args)
	case "continue", "c":
		return d.cmdContinue(args)
	case "step", "s":
		return d.cmdStep(args)

	case "break", "b":
		return d.cmdBreak(args)
	case "tbreak", "tb":
		return d.cmdTBreak(args)
	case "delete", "d":
		return d.cmdDelete(args)
	case "enable":
		return d.cmdEnable(args)
	case "disable":
		return d.cmdDisable(args)

	case "watch", "w":
		return d.cmdWatch(args)

	case "print", "p":
		return d.cmdPrint(args)
	case "info", "i":
		return d.cmdInfo(args)
	case "list", "l":
		return d.cmdList(args)
	case "lint":
		return d.cmdLint(args)

	case "reset":
		return d.cmdReset(args)

	case "help", "h", "?":
		return d.cmdHelp(args)

	default:
		return fmt.Errorf("unknown command: %s (type 'help' for available commands)", cmd)
	}
}

// ShouldBreak reports whether execution should pause before running the
// instruction at the current PC.
func (d *Debugger) ShouldBreak() (bool, string) {
	if bp := d.Breakpoints.GetBreakpoint(d.PC); bp != nil && bp.Enabled {
		hit := d.Breakpoints.ProcessHit(d.PC)
		return true, fmt.Sprintf("breakpoint %d", hit.ID)
	}
	if wp, changed := d.Watchpoints.CheckWatchpoints(d.Core); changed {
		return true, fmt.Sprintf("watchpoint %d: %s changed", wp.ID, wp.Register)
	}
	return false, ""
}

// StepOnce executes the instruction at PC and advances it, returning false
// once the program has run off its end. Program holds field instructions
// only, so StepOnce never meets a reserved or host-control instruction:
// gfadbg has no host VM behind it to dispatch those to (spec.md §1's scope
// boundary), and its loader drops them before the program reaches here.
func (d *Debugger) StepOnce() (bool, error) {
	if d.PC >= len(d.Program) {
		return false, nil
	}
	instr := d.Program[d.PC]
	step, err := d.Exec.Step(uint64(d.PC), instr, d.Core, d.Ctrl)
	if err != nil {
		return false, err
	}
	if step == exec.FailContinue {
		d.Printf("instruction %d (%s) failed: CK is now Fail\n", d.PC, instr)
	}
	d.PC++
	return d.PC < len(d.Program), nil
}

// Lint runs the register-usage analysis over the whole program, independent
// of where execution currently stands.
func (d *Debugger) Lint() []analysis.Finding {
	return analysis.Lint(d.Program)
}

// GetOutput returns and clears the accumulated output buffer.
func (d *Debugger) GetOutput() string {
	output := d.Output.String()
	d.Output.Reset()
	return output
}

// Printf writes formatted output to the output buffer.
func (d *Debugger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(&d.Output, format, args...)
}

// Println writes a line to the output buffer.
func (d *Debugger) Println(args ...interface{}) {
	fmt.Fprintln(&d.Output, args...)
}
