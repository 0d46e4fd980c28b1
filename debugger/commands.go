package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/orlovsky-labs/gfa256/gfa"
)

// Command handler implementations.

// cmdRun resets the register file and starts execution from instruction 0.
func (d *Debugger) cmdRun(args []string) error {
	d.Core.Reset()
	d.PC = 0
	d.Running = true
	d.Println("Starting program execution...")
	return nil
}

// cmdContinue resumes execution from the current PC.
func (d *Debugger) cmdContinue(args []string) error {
	if d.PC >= len(d.Program) {
		return fmt.Errorf("program has already run to completion")
	}
	d.Running = true
	d.Println("Continuing...")
	return nil
}

// cmdStep executes exactly one instruction.
func (d *Debugger) cmdStep(args []string) error {
	if d.PC >= len(d.Program) {
		d.Println("program has already run to completion")
		return nil
	}
	instr := d.Program[d.PC]
	if _, err := d.StepOnce(); err != nil {
		return err
	}
	d.Printf("%d: %s\n", d.PC-1, instr)
	return nil
}

// cmdBreak sets a breakpoint at an instruction index.
func (d *Debugger) cmdBreak(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: break <instruction-index>")
	}
	pc, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid instruction index %q: %w", args[0], err)
	}
	bp := d.Breakpoints.AddBreakpoint(pc, false)
	d.Printf("Breakpoint %d at instruction %d\n", bp.ID, pc)
	return nil
}

// cmdTBreak sets a one-shot breakpoint.
func (d *Debugger) cmdTBreak(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: tbreak <instruction-index>")
	}
	pc, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid instruction index %q: %w", args[0], err)
	}
	bp := d.Breakpoints.AddBreakpoint(pc, true)
	d.Printf("Temporary breakpoint %d at instruction %d\n", bp.ID, pc)
	return nil
}

// cmdDelete deletes one breakpoint by ID, or all breakpoints with no args.
func (d *Debugger) cmdDelete(args []string) error {
	if len(args) == 0 {
		d.Breakpoints.Clear()
		d.Println("All breakpoints deleted")
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid breakpoint ID %q: %w", args[0], err)
	}
	if err := d.Breakpoints.DeleteBreakpoint(id); err != nil {
		return err
	}
	d.Printf("Breakpoint %d deleted\n", id)
	return nil
}

// cmdEnable re-enables a disabled breakpoint.
func (d *Debugger) cmdEnable(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: enable <breakpoint-id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid breakpoint ID %q: %w", args[0], err)
	}
	if err := d.Breakpoints.EnableBreakpoint(id); err != nil {
		return err
	}
	d.Printf("Breakpoint %d enabled\n", id)
	return nil
}

// cmdDisable disables a breakpoint without deleting it.
func (d *Debugger) cmdDisable(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: disable <breakpoint-id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid breakpoint ID %q: %w", args[0], err)
	}
	if err := d.Breakpoints.DisableBreakpoint(id); err != nil {
		return err
	}
	d.Printf("Breakpoint %d disabled\n", id)
	return nil
}

// cmdWatch adds a watchpoint on a named register.
func (d *Debugger) cmdWatch(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: watch <register>")
	}
	reg, err := parseReg(args[0])
	if err != nil {
		return err
	}
	wp := d.Watchpoints.AddWatchpoint(reg, d.Core)
	d.Printf("Watchpoint %d on %s\n", wp.ID, reg)
	return nil
}

// cmdPrint shows a single register's current value.
func (d *Debugger) cmdPrint(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: print <register>")
	}
	reg, err := parseReg(args[0])
	if err != nil {
		return err
	}
	if v, ok := d.Core.Get(reg); ok {
		d.Printf("%s = %s\n", reg, v)
	} else {
		d.Printf("%s = ~ (empty)\n", reg)
	}
	return nil
}

// cmdInfo reports session-wide state: all registers, CO/CK, or the active
// breakpoints/watchpoints, selected by its first argument.
func (d *Debugger) cmdInfo(args []string) error {
	what := "registers"
	if len(args) > 0 {
		what = strings.ToLower(args[0])
	}

	switch what {
	case "registers", "regs", "reg":
		d.Println(d.Core.String())
	case "control", "ctrl", "co", "ck":
		d.Printf("CO=%v CK=%v\n", d.Ctrl.CO(), d.Ctrl.CK())
	case "breakpoints", "break", "b":
		for _, bp := range d.Breakpoints.GetAllBreakpoints() {
			d.Printf("%d: instruction %d  enabled=%v hits=%d\n", bp.ID, bp.PC, bp.Enabled, bp.HitCount)
		}
	case "watchpoints", "watch", "w":
		for _, wp := range d.Watchpoints.GetAllWatchpoints() {
			d.Printf("%d: %s  enabled=%v hits=%d\n", wp.ID, wp.Register, wp.Enabled, wp.HitCount)
		}
	default:
		return fmt.Errorf("unknown info target: %s (try registers, control, breakpoints, watchpoints)", what)
	}
	return nil
}

// cmdList shows the program around the current PC.
func (d *Debugger) cmdList(args []string) error {
	context := DefaultListContext
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			context = n
		}
	}

	lo := d.PC - context
	if lo < 0 {
		lo = 0
	}
	hi := d.PC + context + 1
	if hi > len(d.Program) {
		hi = len(d.Program)
	}

	for i := lo; i < hi; i++ {
		marker := "  "
		if i == d.PC {
			marker = "->"
		}
		if d.Breakpoints.GetBreakpoint(i) != nil {
			marker = "* "
		}
		d.Printf("%s %4d: %s\n", marker, i, d.Program[i])
	}
	return nil
}

// cmdLint runs the register-usage analysis over the whole program.
func (d *Debugger) cmdLint(args []string) error {
	findings := d.Lint()
	if len(findings) == 0 {
		d.Println("no findings")
		return nil
	}
	for _, f := range findings {
		d.Println(f.String())
	}
	return nil
}

// cmdReset clears the register file and control registers and rewinds PC to
// the start, without touching breakpoints or watchpoints.
func (d *Debugger) cmdReset(args []string) error {
	order := d.Core.Order()
	d.Core = gfa.NewCore(order)
	d.Ctrl.Reset()
	d.PC = 0
	d.Running = false
	d.Println("Reset")
	return nil
}

// cmdHelp prints the command summary.
func (d *Debugger) cmdHelp(args []string) error {
	d.Println(`Commands:
  run, r                  reset and start execution
  continue, c             resume execution
  step, s                 execute one instruction
  break, b <idx>          set a breakpoint at instruction idx
  tbreak, tb <idx>        set a one-shot breakpoint
  delete, d [id]          delete a breakpoint, or all with no id
  enable <id>             enable a breakpoint
  disable <id>            disable a breakpoint
  watch, w <reg>          watch a register for value changes
  print, p <reg>          print a register's value
  info, i [what]          registers, control, breakpoints, or watchpoints
  list, l [n]             list the program around PC
  lint                    run register-usage analysis over the program
  reset                   clear registers and control flags, rewind PC
  help, h, ?              this message`)
	return nil
}

// parseReg parses a register mnemonic like "E1" or "EA" (case-insensitive).
func parseReg(s string) (gfa.Reg, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for r := gfa.E1; r <= gfa.EH; r++ {
		if r.String() == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown register %q", s)
}
