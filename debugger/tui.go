package debugger

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// TUI is the tcell/tview text interface onto a Debugger: a program listing,
// a register panel, CO/CK status, breakpoints/watchpoints, and an output
// log, all driven by the same command language as the CLI.
type TUI struct {
	Debugger *Debugger
	App      *tview.Application
	Pages    *tview.Pages

	MainLayout *tview.Flex
	RightPanel *tview.Flex

	ProgramView     *tview.TextView
	RegisterView    *tview.TextView
	ControlView     *tview.TextView
	BreakpointsView *tview.TextView
	OutputView      *tview.TextView
	CommandInput    *tview.InputField
}

// NewTUI constructs a TUI over dbg and lays out its panels.
func NewTUI(dbg *Debugger) *TUI {
	t := &TUI{Debugger: dbg, App: tview.NewApplication()}

	t.initializeViews()
	t.buildLayout()
	t.setupKeyBindings()

	return t
}

func (t *TUI) initializeViews() {
	t.ProgramView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	t.ProgramView.SetBorder(true).SetTitle(" Program ")

	t.RegisterView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	t.RegisterView.SetBorder(true).SetTitle(" Registers ")

	t.ControlView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	t.ControlView.SetBorder(true).SetTitle(" CO / CK ")

	t.BreakpointsView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	t.BreakpointsView.SetBorder(true).SetTitle(" Breakpoints/Watchpoints ")

	t.OutputView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)
	t.OutputView.SetBorder(true).SetTitle(" Output ")

	t.CommandInput = tview.NewInputField().
		SetLabel("> ").
		SetFieldWidth(0)
	t.CommandInput.SetBorder(true).SetTitle(" Command ")
	t.CommandInput.SetDoneFunc(t.handleCommand)
}

func (t *TUI) buildLayout() {
	rightTop := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(t.RegisterView, 10, 0, false).
		AddItem(t.ControlView, 3, 0, false)

	t.RightPanel = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(rightTop, 0, 3, false).
		AddItem(t.BreakpointsView, 8, 0, false)

	mainContent := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(t.ProgramView, 0, 2, false).
		AddItem(t.RightPanel, 0, 1, false)

	t.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(mainContent, 0, 4, false).
		AddItem(t.OutputView, 8, 0, false).
		AddItem(t.CommandInput, 3, 0, true)

	t.Pages = tview.NewPages().
		AddPage("main", t.MainLayout, true, true)
}

func (t *TUI) setupKeyBindings() {
	t.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyF1:
			t.executeCommand("help")
			return nil
		case tcell.KeyF5:
			t.executeCommand("continue")
			return nil
		case tcell.KeyF11:
			t.executeCommand("step")
			return nil
		case tcell.KeyCtrlC:
			t.App.Stop()
			return nil
		case tcell.KeyCtrlL:
			t.RefreshAll()
			return nil
		}
		return event
	})
}

func (t *TUI) handleCommand(key tcell.Key) {
	if key == tcell.KeyEnter {
		cmd := t.CommandInput.GetText()
		if cmd != "" {
			t.executeCommand(cmd)
			t.CommandInput.SetText("")
		}
	}
}

func (t *TUI) executeCommand(cmd string) {
	t.Debugger.Output.Reset()

	err := t.Debugger.ExecuteCommand(cmd)
	for t.Debugger.Running {
		if stop, reason := t.Debugger.ShouldBreak(); stop {
			t.Debugger.Running = false
			t.Debugger.Printf("Stopped: %s at instruction %d\n", reason, t.Debugger.PC)
			break
		}
		more, stepErr := t.Debugger.StepOnce()
		if stepErr != nil {
			t.Debugger.Running = false
			t.Debugger.Printf("Runtime error: %v\n", stepErr)
			break
		}
		if !more {
			t.Debugger.Running = false
			t.Debugger.Println("Program ran to completion")
		}
	}
	output := t.Debugger.GetOutput()

	if err != nil {
		t.WriteOutput(fmt.Sprintf("[red]Error:[white] %v\n", err))
	}
	if output != "" {
		t.WriteOutput(output)
	}

	t.RefreshAll()
}

// WriteOutput appends text to the output view and scrolls to the end.
func (t *TUI) WriteOutput(text string) {
	_, _ = t.OutputView.Write([]byte(text))
	t.OutputView.ScrollToEnd()
}

// RefreshAll redraws every panel from the debugger's current state.
func (t *TUI) RefreshAll() {
	t.UpdateProgramView()
	t.UpdateRegisterView()
	t.UpdateControlView()
	t.UpdateBreakpointsView()
	t.App.Draw()
}

// UpdateProgramView lists the decoded program with a PC marker and
// breakpoint markers, mirroring cmdList's output but for the whole program.
func (t *TUI) UpdateProgramView() {
	t.ProgramView.Clear()

	var lines []string
	for i, instr := range t.Debugger.Program {
		marker := "  "
		color := "white"
		if i == t.Debugger.PC {
			marker = "->"
			color = "yellow"
		}
		if t.Debugger.Breakpoints.GetBreakpoint(i) != nil {
			marker = "* "
		}
		lines = append(lines, fmt.Sprintf("[%s]%s %4d: %s[white]", color, marker, i, instr))
	}

	t.ProgramView.SetText(strings.Join(lines, "\n"))
}

// UpdateRegisterView shows the register file's current snapshot.
func (t *TUI) UpdateRegisterView() {
	t.RegisterView.Clear()
	t.RegisterView.SetText(t.Debugger.Core.String())
}

// UpdateControlView shows CO and CK.
func (t *TUI) UpdateControlView() {
	t.ControlView.Clear()

	coColor := "green"
	if !t.Debugger.Ctrl.CO() {
		coColor = "white"
	}
	ckColor := "white"
	if t.Debugger.Ctrl.CK() {
		ckColor = "red"
	}

	t.ControlView.SetText(fmt.Sprintf("[%s]CO: %v[white]  [%s]CK: %v[white]",
		coColor, t.Debugger.Ctrl.CO(), ckColor, t.Debugger.Ctrl.CK()))
}

// UpdateBreakpointsView shows every breakpoint and watchpoint.
func (t *TUI) UpdateBreakpointsView() {
	t.BreakpointsView.Clear()

	var lines []string

	bps := t.Debugger.Breakpoints.GetAllBreakpoints()
	if len(bps) > 0 {
		lines = append(lines, "[yellow]Breakpoints:[white]")
		for _, bp := range bps {
			status := "enabled"
			color := "green"
			if !bp.Enabled {
				status = "disabled"
				color = "red"
			}
			lines = append(lines, fmt.Sprintf("  %d: [%s]%s[white] instruction %d (hits: %d)",
				bp.ID, color, status, bp.PC, bp.HitCount))
		}
	} else {
		lines = append(lines, "[yellow]No breakpoints set[white]")
	}

	lines = append(lines, "")

	wps := t.Debugger.Watchpoints.GetAllWatchpoints()
	if len(wps) > 0 {
		lines = append(lines, "[yellow]Watchpoints:[white]")
		for _, wp := range wps {
			status := "enabled"
			if !wp.Enabled {
				status = "disabled"
			}
			lines = append(lines, fmt.Sprintf("  %d: watch %s (%s, hits: %d)", wp.ID, wp.Register, status, wp.HitCount))
		}
	} else {
		lines = append(lines, "[yellow]No watchpoints set[white]")
	}

	t.BreakpointsView.SetText(strings.Join(lines, "\n"))
}

// Run starts the TUI's event loop; it blocks until the user quits.
func (t *TUI) Run() error {
	t.RefreshAll()

	t.WriteOutput("[green]gfadbg[white]\n")
	t.WriteOutput("Press F1 for help, F5 to continue, F11 to step\n")
	t.WriteOutput("Type 'help' for the command list\n\n")

	return t.App.SetRoot(t.Pages, true).SetFocus(t.CommandInput).Run()
}

// Stop terminates the TUI's event loop.
func (t *TUI) Stop() {
	t.App.Stop()
}
