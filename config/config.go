package config

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/orlovsky-labs/gfa256/gfa"
)

// Config holds the settings a gfadbg session loads at startup: which field
// order to execute over, a complexity budget, and the debugger/display/trace
// preferences. gfadbg applies only the field order; the other settings are
// loaded and saved but nothing reads them (no budget is enforced).
type Config struct {
	// Field settings
	Field struct {
		Order     string `toml:"order"`      // "25519", "secp", "stark", or "custom"
		CustomHex string `toml:"custom_hex"` // prime modulus in hex, only used when Order == "custom"
	} `toml:"field"`

	// Execution settings
	Execution struct {
		ComplexityBudget uint64 `toml:"complexity_budget"`
		HaltOnFail       bool   `toml:"halt_on_fail"`
		EnableTrace      bool   `toml:"enable_trace"`
		EnableStats      bool   `toml:"enable_stats"`
		EnableLint       bool   `toml:"enable_lint"`
	} `toml:"execution"`

	// Debugger settings
	Debugger struct {
		HistorySize   int  `toml:"history_size"`
		ShowRegisters bool `toml:"show_registers"`
		ShowProgram   bool `toml:"show_program"`
	} `toml:"debugger"`

	// Display settings
	Display struct {
		ColorOutput    bool   `toml:"color_output"`
		NumberFormat   string `toml:"number_format"` // hex or padded-hex
		ProgramContext int    `toml:"program_context"`
	} `toml:"display"`

	// Trace settings
	Trace struct {
		OutputFile string `toml:"output_file"`
		MaxEntries int    `toml:"max_entries"`
	} `toml:"trace"`

	// Statistics settings
	Statistics struct {
		OutputFile string `toml:"output_file"`
		Format     string `toml:"format"` // json
	} `toml:"statistics"`
}

// DefaultConfig returns a configuration matching spec.md §3's default field
// order (25519) and conservative debugger/trace defaults.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Field.Order = "25519"

	cfg.Execution.ComplexityBudget = 1_000_000
	cfg.Execution.HaltOnFail = false
	cfg.Execution.EnableTrace = false
	cfg.Execution.EnableStats = false
	cfg.Execution.EnableLint = true

	cfg.Debugger.HistorySize = 1000
	cfg.Debugger.ShowRegisters = true
	cfg.Debugger.ShowProgram = true

	cfg.Display.ColorOutput = true
	cfg.Display.NumberFormat = "hex"
	cfg.Display.ProgramContext = 5

	cfg.Trace.OutputFile = "trace.log"
	cfg.Trace.MaxEntries = 100000

	cfg.Statistics.OutputFile = "stats.json"
	cfg.Statistics.Format = "json"

	return cfg
}

// FieldOrder resolves the configured field order to a *gfa.FieldOrder.
func (c *Config) FieldOrder() (*gfa.FieldOrder, error) {
	switch c.Field.Order {
	case "", "25519":
		return gfa.Order25519, nil
	case "secp":
		return gfa.OrderSECP, nil
	case "stark":
		return gfa.OrderSTARK, nil
	case "custom":
		q, ok := new(big.Int).SetString(c.Field.CustomHex, 16)
		if !ok {
			return nil, fmt.Errorf("config: field.custom_hex %q is not a valid hex prime", c.Field.CustomHex)
		}
		return gfa.NewCustomOrder("custom", q), nil
	default:
		return nil, fmt.Errorf("config: unknown field.order %q (want 25519, secp, stark, or custom)", c.Field.Order)
	}
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "gfadbg")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "gfadbg")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// GetLogPath returns the platform-specific log directory path.
func GetLogPath() string {
	var logDir string

	switch runtime.GOOS {
	case "windows":
		logDir = os.Getenv("APPDATA")
		if logDir == "" {
			logDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		logDir = filepath.Join(logDir, "gfadbg", "logs")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "logs"
		}
		logDir = filepath.Join(homeDir, ".local", "share", "gfadbg", "logs")

	default:
		return "logs"
	}

	if err := os.MkdirAll(logDir, 0750); err != nil {
		return "logs"
	}

	return logDir
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file. A missing file is
// not an error — it yields the default configuration.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
