// Package main is a minimal fyne desktop window onto a gfadbg Debugger: a
// register panel, a program listing, and a toolbar wired to the same
// run/step/continue/breakpoint commands the TUI and CLI use.
package main

import (
	"fmt"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/orlovsky-labs/gfa256/debugger"
	"github.com/orlovsky-labs/gfa256/gfa"
	"github.com/orlovsky-labs/gfa256/isa"
)

// GUI is the fyne desktop window onto a Debugger session.
type GUI struct {
	Debugger *debugger.Debugger
	App      fyne.App
	Window   fyne.Window

	ProgramView     *widget.TextGrid
	RegisterView    *widget.TextGrid
	ControlView     *widget.Label
	BreakpointsList *widget.List
	ConsoleOutput   *widget.TextGrid
	StatusLabel     *widget.Label

	Toolbar *widget.Toolbar

	breakpoints   []string
	consoleBuffer strings.Builder
	consoleMutex  sync.Mutex
}

// RunGUI opens the fyne window and blocks until it is closed.
func RunGUI(dbg *debugger.Debugger) error {
	g := newGUI(dbg)
	g.Window.ShowAndRun()
	return nil
}

// newGUI constructs a GUI over dbg and lays out its panels.
func newGUI(dbg *debugger.Debugger) *GUI {
	myApp := app.New()
	myWindow := myApp.NewWindow("gfadbg")

	g := &GUI{
		Debugger:    dbg,
		App:         myApp,
		Window:      myWindow,
		breakpoints: []string{},
	}

	g.initializeViews()
	g.setupToolbar()
	g.buildLayout()

	myWindow.Resize(fyne.NewSize(1100, 700))
	return g
}

func (g *GUI) initializeViews() {
	g.ProgramView = widget.NewTextGrid()
	g.updateProgram()

	g.RegisterView = widget.NewTextGrid()
	g.updateRegisters()

	g.ControlView = widget.NewLabel("")
	g.updateControl()

	g.BreakpointsList = widget.NewList(
		func() int { return len(g.breakpoints) },
		func() fyne.CanvasObject { return widget.NewLabel("template") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(g.breakpoints[id])
		},
	)

	g.ConsoleOutput = widget.NewTextGrid()
	g.ConsoleOutput.SetText("")

	g.StatusLabel = widget.NewLabel("Ready")
}

func (g *GUI) buildLayout() {
	programPanel := container.NewBorder(
		widget.NewLabel("Program"), nil, nil, nil,
		container.NewScroll(g.ProgramView),
	)

	registerPanel := container.NewBorder(
		widget.NewLabel("Registers"), nil, nil, nil,
		container.NewScroll(g.RegisterView),
	)

	controlPanel := container.NewBorder(
		widget.NewLabel("CO / CK"), nil, nil, nil,
		g.ControlView,
	)

	breakpointsPanel := container.NewBorder(
		widget.NewLabel("Breakpoints"), nil, nil, nil,
		container.NewScroll(g.BreakpointsList),
	)

	consolePanel := container.NewBorder(
		widget.NewLabel("Output"), nil, nil, nil,
		container.NewScroll(g.ConsoleOutput),
	)

	rightTop := container.NewVSplit(registerPanel, controlPanel)
	rightTop.SetOffset(0.8)

	rightBottom := container.NewVSplit(breakpointsPanel, consolePanel)
	rightBottom.SetOffset(0.3)

	rightPanel := container.NewVSplit(rightTop, rightBottom)
	rightPanel.SetOffset(0.5)

	mainSplit := container.NewHSplit(programPanel, rightPanel)
	mainSplit.SetOffset(0.5)

	content := container.NewBorder(g.Toolbar, g.StatusLabel, nil, nil, mainSplit)
	g.Window.SetContent(content)
}

func (g *GUI) setupToolbar() {
	g.Toolbar = widget.NewToolbar(
		widget.NewToolbarAction(theme.MediaPlayIcon(), g.runProgram),
		widget.NewToolbarAction(theme.MediaSkipNextIcon(), g.stepProgram),
		widget.NewToolbarAction(theme.MediaFastForwardIcon(), g.continueProgram),
		widget.NewToolbarAction(theme.MediaStopIcon(), g.stopProgram),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentClearIcon(), g.clearBreakpoints),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), g.refreshViews),
	)
}

func (g *GUI) updateViews() {
	g.updateProgram()
	g.updateRegisters()
	g.updateControl()
	g.updateBreakpoints()
}

func (g *GUI) updateProgram() {
	var b strings.Builder
	for i, instr := range g.Debugger.Program {
		marker := "  "
		if i == g.Debugger.PC {
			marker = "->"
		}
		if g.Debugger.Breakpoints.GetBreakpoint(i) != nil {
			marker = "* "
		}
		fmt.Fprintf(&b, "%s %4d: %s\n", marker, i, instr)
	}
	g.ProgramView.SetText(b.String())
}

func (g *GUI) updateRegisters() {
	g.RegisterView.SetText(g.Debugger.Core.String())
}

func (g *GUI) updateControl() {
	g.ControlView.SetText(fmt.Sprintf("CO=%v\nCK=%v", g.Debugger.Ctrl.CO(), g.Debugger.Ctrl.CK()))
}

func (g *GUI) updateBreakpoints() {
	bps := g.Debugger.Breakpoints.GetAllBreakpoints()
	g.breakpoints = make([]string, 0, len(bps))
	for _, bp := range bps {
		g.breakpoints = append(g.breakpoints, fmt.Sprintf("#%d @ %d (enabled=%v hits=%d)", bp.ID, bp.PC, bp.Enabled, bp.HitCount))
	}
	g.BreakpointsList.Refresh()
}

func (g *GUI) appendConsole(line string) {
	g.consoleMutex.Lock()
	defer g.consoleMutex.Unlock()
	g.consoleBuffer.WriteString(line)
	g.ConsoleOutput.SetText(g.consoleBuffer.String())
}

func (g *GUI) runProgram() {
	g.Debugger.Core.Reset()
	g.Debugger.PC = 0
	g.continueProgram()
}

func (g *GUI) stepProgram() {
	more, err := g.Debugger.StepOnce()
	if out := g.Debugger.GetOutput(); out != "" {
		g.appendConsole(out)
	}
	if err != nil {
		g.StatusLabel.SetText("Error: " + err.Error())
		g.updateViews()
		return
	}
	if !more {
		g.StatusLabel.SetText("Program ran to completion")
	} else {
		g.StatusLabel.SetText("Stepped")
	}
	g.updateViews()
}

func (g *GUI) continueProgram() {
	for {
		if stop, reason := g.Debugger.ShouldBreak(); stop {
			g.StatusLabel.SetText("Stopped: " + reason)
			break
		}
		more, err := g.Debugger.StepOnce()
		if out := g.Debugger.GetOutput(); out != "" {
			g.appendConsole(out)
		}
		if err != nil {
			g.StatusLabel.SetText("Error: " + err.Error())
			break
		}
		if !more {
			g.StatusLabel.SetText("Program ran to completion")
			break
		}
	}
	g.updateViews()
}

func (g *GUI) stopProgram() {
	g.StatusLabel.SetText("Stopped")
}

func (g *GUI) clearBreakpoints() {
	g.Debugger.Breakpoints.Clear()
	g.updateViews()
}

func (g *GUI) refreshViews() {
	g.updateViews()
}

// newDebugSession builds a Debugger over a tiny sample program, used when
// the window is opened with no program file given.
func newDebugSession() *debugger.Debugger {
	prog := []isa.FieldInstr{
		isa.PutV{Dst: gfa.E1, Val: isa.Val1},
		isa.PutV{Dst: gfa.E2, Val: isa.Val1},
		isa.Add{DstSrc: gfa.E1, Src: gfa.E2},
	}
	return debugger.NewDebugger(prog, gfa.Order25519)
}
