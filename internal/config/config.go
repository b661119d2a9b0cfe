// Package config loads the rpsls HCL configuration file.
package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultPath is where the CLI looks for a config file when none is given.
const DefaultPath = "rpsls.hcl"

// Config is the resolved configuration with every default applied.
type Config struct {
	Settings Settings
	Simulate SimulateSettings
	UI       UISettings
}

// Settings holds process-wide settings.
type Settings struct {
	LogLevel string `hcl:"log_level,optional"`
	// Seed of 0 means a time-based seed is chosen per run.
	Seed int64 `hcl:"seed,optional"`
}

// SimulateSettings controls the Monte Carlo simulation.
type SimulateSettings struct {
	Throws  int `hcl:"throws,optional"`
	Workers int `hcl:"workers,optional"`
}

// UISettings controls the interactive front-end.
type UISettings struct {
	Theme string `hcl:"theme,optional"`
}

// fileConfig mirrors the on-disk layout; every block is optional.
type fileConfig struct {
	Settings *Settings         `hcl:"settings,block"`
	Simulate *SimulateSettings `hcl:"simulate,block"`
	UI       *UISettings       `hcl:"ui,block"`
}

var validThemes = map[string]bool{
	"default": true,
	"dark":    true,
	"light":   true,
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Settings: Settings{
			LogLevel: "info",
		},
		Simulate: SimulateSettings{
			Throws:  100_000,
			Workers: runtime.GOMAXPROCS(0),
		},
		UI: UISettings{
			Theme: "default",
		},
	}
}

// Load reads filename. A missing file is not an error and yields Default().
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills in defaults for anything omitted.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	if raw.Settings != nil {
		if raw.Settings.LogLevel != "" {
			cfg.Settings.LogLevel = raw.Settings.LogLevel
		}
		cfg.Settings.Seed = raw.Settings.Seed
	}
	if raw.Simulate != nil {
		if raw.Simulate.Throws != 0 {
			cfg.Simulate.Throws = raw.Simulate.Throws
		}
		if raw.Simulate.Workers != 0 {
			cfg.Simulate.Workers = raw.Simulate.Workers
		}
	}
	if raw.UI != nil && raw.UI.Theme != "" {
		cfg.UI.Theme = raw.UI.Theme
	}

	return cfg, nil
}

// Validate checks value ranges that HCL types cannot express.
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Settings.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.Settings.LogLevel)
	}
	if c.Simulate.Throws <= 0 {
		return fmt.Errorf("simulate throws must be positive")
	}
	if c.Simulate.Workers <= 0 {
		return fmt.Errorf("simulate workers must be positive")
	}
	if !validThemes[c.UI.Theme] {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.Settings.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
