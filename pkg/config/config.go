// Package config loads the host configuration from a YAML file with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTickRateHz  = 20
	DefaultMaxLogLines = 100
)

type Config struct {
	TickRateHz  int  `yaml:"tick_rate_hz" env:"TICK_RATE_HZ"`
	Verbose     bool `yaml:"verbose" env:"VERBOSE"`
	MaxLogLines int  `yaml:"max_log_lines" env:"MAX_LOG_LINES"`
	// AuditDir enables decision auditing when set.
	AuditDir string `yaml:"audit_dir" env:"AUDIT_DIR"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		TickRateHz:  DefaultTickRateHz,
		MaxLogLines: DefaultMaxLogLines,
	}
}

// Load reads path (skipped when empty), fills in defaults and applies
// GUIFW_* environment overrides.
func Load(path string) (Config, error) {
	var c Config
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &c); err != nil {
			return c, fmt.Errorf("config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&c, env.Options{Prefix: "GUIFW_"}); err != nil {
		return c, fmt.Errorf("parse env: %w", err)
	}

	d := Default()
	if c.TickRateHz == 0 {
		c.TickRateHz = d.TickRateHz
	}
	if c.MaxLogLines == 0 {
		c.MaxLogLines = d.MaxLogLines
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.TickRateHz < 0 || c.TickRateHz > 1000 {
		return fmt.Errorf("config: tick_rate_hz %d out of range", c.TickRateHz)
	}
	if c.MaxLogLines < 0 {
		return errors.New("config: max_log_lines must not be negative")
	}
	return nil
}
