package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/orlovsky-labs/gfa256/gfa"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Field.Order != "25519" {
		t.Errorf("Expected Field.Order=25519, got %s", cfg.Field.Order)
	}
	if cfg.Execution.ComplexityBudget != 1_000_000 {
		t.Errorf("Expected ComplexityBudget=1000000, got %d", cfg.Execution.ComplexityBudget)
	}
	if cfg.Execution.HaltOnFail {
		t.Error("Expected HaltOnFail=false")
	}

	if cfg.Debugger.HistorySize != 1000 {
		t.Errorf("Expected HistorySize=1000, got %d", cfg.Debugger.HistorySize)
	}
	if !cfg.Debugger.ShowRegisters {
		t.Error("Expected ShowRegisters=true")
	}

	if cfg.Display.NumberFormat != "hex" {
		t.Errorf("Expected NumberFormat=hex, got %s", cfg.Display.NumberFormat)
	}

	if cfg.Trace.MaxEntries != 100000 {
		t.Errorf("Expected MaxEntries=100000, got %d", cfg.Trace.MaxEntries)
	}

	if cfg.Statistics.Format != "json" {
		t.Errorf("Expected Format=json, got %s", cfg.Statistics.Format)
	}
}

func TestFieldOrderResolvesNamedOrders(t *testing.T) {
	cfg := DefaultConfig()

	cases := map[string]*gfa.FieldOrder{
		"25519": gfa.Order25519,
		"secp":  gfa.OrderSECP,
		"stark": gfa.OrderSTARK,
	}
	for name, want := range cases {
		cfg.Field.Order = name
		got, err := cfg.FieldOrder()
		if err != nil {
			t.Fatalf("FieldOrder(%q): %v", name, err)
		}
		if got != want {
			t.Errorf("FieldOrder(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestFieldOrderCustomHex(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Field.Order = "custom"
	cfg.Field.CustomHex = "65"
	got, err := cfg.FieldOrder()
	if err != nil {
		t.Fatalf("FieldOrder: %v", err)
	}
	if got.Q().Int64() != 0x65 {
		t.Errorf("custom order Q() = %v, want 0x65", got.Q())
	}
}

func TestFieldOrderRejectsUnknown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Field.Order = "bn254"
	if _, err := cfg.FieldOrder(); err == nil {
		t.Error("expected an error for an unrecognized field order")
	}
}

func TestFieldOrderRejectsBadCustomHex(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Field.Order = "custom"
	cfg.Field.CustomHex = "not-hex"
	if _, err := cfg.FieldOrder(); err == nil {
		t.Error("expected an error for invalid custom_hex")
	}
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()

	if path == "" {
		t.Error("GetConfigPath returned empty string")
	}
	if filepath.Base(path) != "config.toml" {
		t.Errorf("Expected path to end with config.toml, got %s", path)
	}

	switch runtime.GOOS {
	case "windows":
		if !filepath.IsAbs(path) && path != "config.toml" {
			t.Errorf("Expected absolute path on Windows, got %s", path)
		}
	case "darwin", "linux":
		dir := filepath.Dir(path)
		if filepath.Base(dir) != "gfadbg" && path != "config.toml" {
			t.Errorf("Expected path in gfadbg directory or fallback, got %s", path)
		}
	}
}

func TestGetLogPath(t *testing.T) {
	path := GetLogPath()

	if path == "" {
		t.Error("GetLogPath returned empty string")
	}

	switch runtime.GOOS {
	case "windows":
		if !filepath.IsAbs(path) && path != "logs" {
			t.Errorf("Expected absolute path on Windows, got %s", path)
		}
	case "darwin", "linux":
		if filepath.Base(path) != "logs" {
			t.Errorf("Expected path to end with logs, got %s", path)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.toml")

	cfg := DefaultConfig()
	cfg.Field.Order = "secp"
	cfg.Execution.ComplexityBudget = 42
	cfg.Execution.EnableTrace = true
	cfg.Debugger.HistorySize = 500
	cfg.Display.ColorOutput = false

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loaded.Field.Order != "secp" {
		t.Errorf("Expected Field.Order=secp, got %s", loaded.Field.Order)
	}
	if loaded.Execution.ComplexityBudget != 42 {
		t.Errorf("Expected ComplexityBudget=42, got %d", loaded.Execution.ComplexityBudget)
	}
	if !loaded.Execution.EnableTrace {
		t.Error("Expected EnableTrace=true")
	}
	if loaded.Debugger.HistorySize != 500 {
		t.Errorf("Expected HistorySize=500, got %d", loaded.Debugger.HistorySize)
	}
	if loaded.Display.ColorOutput {
		t.Error("Expected ColorOutput=false")
	}
}

func TestLoadNonExistent(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nonexistent.toml")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom should not error on non-existent file: %v", err)
	}
	if cfg.Execution.ComplexityBudget != 1_000_000 {
		t.Error("Expected default config when file doesn't exist")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid.toml")

	invalidTOML := `
[execution]
complexity_budget = "not a number"  # Invalid: should be uint64
`
	if err := os.WriteFile(configPath, []byte(invalidTOML), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("Expected error when loading invalid TOML")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "subdir1", "subdir2", "config.toml")

	cfg := DefaultConfig()
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	dir := filepath.Dir(configPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Error("Parent directories were not created")
	}
}
