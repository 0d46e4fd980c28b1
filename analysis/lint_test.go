package analysis_test

import (
	"testing"

	"github.com/orlovsky-labs/gfa256/analysis"
	"github.com/orlovsky-labs/gfa256/fe"
	"github.com/orlovsky-labs/gfa256/isa"
)

func findCode(findings []analysis.Finding, code string) []analysis.Finding {
	var out []analysis.Finding
	for _, f := range findings {
		if f.Code == code {
			out = append(out, f)
		}
	}
	return out
}

func TestDeadStoreDetected(t *testing.T) {
	prog := []isa.FieldInstr{
		isa.PutZ{Dst: isa.E1},
		isa.PutD{Dst: isa.E1, Data: fe.FromUint64(1)},
		isa.Test{Src: isa.E1},
	}
	findings := findCode(analysis.Lint(prog), "DEAD_STORE")
	if len(findings) != 1 {
		t.Fatalf("got %d DEAD_STORE findings, want 1: %v", len(findings), findings)
	}
	if findings[0].Index != 0 {
		t.Errorf("dead store anchored at instr %d, want 0", findings[0].Index)
	}
}

func TestNoDeadStoreWhenReadBetweenWrites(t *testing.T) {
	prog := []isa.FieldInstr{
		isa.PutZ{Dst: isa.E1},
		isa.Test{Src: isa.E1},
		isa.PutD{Dst: isa.E1, Data: fe.FromUint64(1)},
	}
	if findings := findCode(analysis.Lint(prog), "DEAD_STORE"); len(findings) != 0 {
		t.Errorf("unexpected DEAD_STORE findings: %v", findings)
	}
}

func TestUnusedRegisterDetected(t *testing.T) {
	prog := []isa.FieldInstr{
		isa.PutZ{Dst: isa.E1},
		isa.PutD{Dst: isa.E2, Data: fe.FromUint64(1)},
		isa.Test{Src: isa.E1},
	}
	findings := findCode(analysis.Lint(prog), "UNUSED_REGISTER")
	if len(findings) != 1 || findings[0].Reg != isa.E2 {
		t.Fatalf("got %v, want a single UNUSED_REGISTER finding for E2", findings)
	}
}

func TestUseBeforeDefDetected(t *testing.T) {
	prog := []isa.FieldInstr{
		isa.Test{Src: isa.E3},
		isa.PutZ{Dst: isa.E3},
	}
	findings := findCode(analysis.Lint(prog), "USE_BEFORE_DEF")
	if len(findings) != 1 || findings[0].Index != 0 {
		t.Fatalf("got %v, want a single USE_BEFORE_DEF at index 0", findings)
	}
}

func TestUseBeforeDefReportedOnce(t *testing.T) {
	prog := []isa.FieldInstr{
		isa.Test{Src: isa.E1},
		isa.Test{Src: isa.E1},
	}
	findings := findCode(analysis.Lint(prog), "USE_BEFORE_DEF")
	if len(findings) != 1 {
		t.Errorf("got %d findings, want 1 (reported once per register)", len(findings))
	}
}

func TestAddCountsAsBothReadAndWriteNotADeadStore(t *testing.T) {
	prog := []isa.FieldInstr{
		isa.PutD{Dst: isa.E1, Data: fe.FromUint64(1)},
		isa.PutD{Dst: isa.E2, Data: fe.FromUint64(2)},
		isa.Add{DstSrc: isa.E1, Src: isa.E2},
		isa.Test{Src: isa.E1},
	}
	if findings := findCode(analysis.Lint(prog), "DEAD_STORE"); len(findings) != 0 {
		t.Errorf("unexpected DEAD_STORE findings: %v", findings)
	}
}

func TestFindingsSortedByIndex(t *testing.T) {
	prog := []isa.FieldInstr{
		isa.Test{Src: isa.E1},
		isa.PutZ{Dst: isa.E2},
		isa.PutD{Dst: isa.E2, Data: fe.FromUint64(9)},
	}
	findings := analysis.Lint(prog)
	for i := 1; i < len(findings); i++ {
		if findings[i-1].Index > findings[i].Index {
			t.Fatalf("findings not sorted: %v", findings)
		}
	}
}
