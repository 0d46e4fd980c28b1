// Command gfadbg is the gfadbg debugger's entry point: it loads a GFA256
// bytecode file (or falls back to a small built-in demo program), wires up
// the configured field order, and launches the CLI or TUI front end.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/orlovsky-labs/gfa256/config"
	"github.com/orlovsky-labs/gfa256/debugger"
	"github.com/orlovsky-labs/gfa256/gfa"
	"github.com/orlovsky-labs/gfa256/host"
	"github.com/orlovsky-labs/gfa256/isa"
)

var (
	// Version is set at build time via -ldflags "-X main.Version=v1.2.3".
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version information")
		tuiMode     = flag.Bool("tui", false, "start the tcell/tview text interface")
		lintOnly    = flag.Bool("lint", false, "run register-usage analysis over the program and exit")
		configPath  = flag.String("config", "", "path to a config.toml (default: platform config dir)")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("gfadbg %s (%s)\n", Version, Commit)
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	order, err := cfg.FieldOrder()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	prog, err := loadProgram(flag.Arg(0))
	if err != nil {
		log.Fatalf("load program: %v", err)
	}

	dbg := debugger.NewDebugger(prog, order)

	if *lintOnly {
		findings := dbg.Lint()
		if len(findings) == 0 {
			fmt.Println("no findings")
			return
		}
		for _, f := range findings {
			fmt.Println(f.String())
		}
		return
	}

	if *tuiMode {
		if err := debugger.RunTUI(dbg); err != nil {
			log.Fatalf("tui: %v", err)
		}
		return
	}

	if err := debugger.RunCLI(dbg); err != nil {
		log.Fatalf("cli: %v", err)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}

// loadProgram decodes a GFA256 bytecode file at path into a flat field-
// instruction program. Non-field instructions (host control, reserved
// opcodes) are out of gfadbg's scope and are skipped with a warning, same
// as Debugger.StepOnce's note for the field-only execution model. An empty
// path loads a small built-in demo program instead of failing.
//
// The file format is a gfadbg-specific container (spec.md leaves this to the
// host): a 4-byte little-endian code-segment length, the code segment, then
// the data segment (used by putd's 32-byte immediates).
func loadProgram(path string) ([]isa.FieldInstr, error) {
	if path == "" {
		return demoProgram(), nil
	}

	raw, err := os.ReadFile(path) // #nosec G304 -- path is an operator-supplied CLI argument
	if err != nil {
		return nil, err
	}
	if len(raw) < 4 {
		return nil, fmt.Errorf("gfadbg: %s is too short to be a valid program file", path)
	}
	codeLen := int(raw[0]) | int(raw[1])<<8 | int(raw[2])<<16 | int(raw[3])<<24
	if codeLen < 0 || 4+codeLen > len(raw) {
		return nil, fmt.Errorf("gfadbg: %s has an invalid code-segment length %d", path, codeLen)
	}
	code := raw[4 : 4+codeLen]
	data := raw[4+codeLen:]

	m := host.NewBitMarshaller(code, data)
	var prog []isa.FieldInstr
	for {
		instr, err := isa.Decode(m)
		if err == host.ErrEOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if instr.Field == nil {
			fmt.Fprintf(os.Stderr, "gfadbg: skipping non-field instruction %s\n", instr)
			continue
		}
		prog = append(prog, instr.Field)
	}
	return prog, nil
}

func demoProgram() []isa.FieldInstr {
	return []isa.FieldInstr{
		isa.PutV{Dst: gfa.E1, Val: isa.Val1},
		isa.PutV{Dst: gfa.E2, Val: isa.Val1},
		isa.Add{DstSrc: gfa.E1, Src: gfa.E2},
		isa.Test{Src: gfa.E1},
	}
}
