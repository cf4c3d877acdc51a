// Package config provides configuration loading for the dynvec CLI.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/hupe1980/dynvec/internal/kernel"
)

// Config holds all configuration for the CLI.
type Config struct {
	// Kernel forces a kernel backend (generic, unrolled, gonum). Empty keeps
	// the automatic selection.
	Kernel string       `yaml:"kernel"`
	Memory MemoryConfig `yaml:"memory"`
	Log    LogConfig    `yaml:"log"`
	REPL   REPLConfig   `yaml:"repl"`
}

// MemoryConfig bounds the memory held by all vectors of a session.
type MemoryConfig struct {
	// Limit is a human-readable size such as "64MiB" or "1GB". Empty or
	// "0" means unlimited.
	Limit string `yaml:"limit"`
}

// LogConfig selects the session logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// REPLConfig holds interactive shell settings.
type REPLConfig struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
}

// Load reads and parses the config file at path and applies defaults.
// Returns an error if the file cannot be read, parsed or validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a Config with every default applied.
func Default() *Config {
	var cfg Config
	ApplyDefaults(&cfg)
	return &cfg
}

// Validate checks that every field parses.
func (c *Config) Validate() error {
	if c.Kernel != "" {
		if _, ok := kernel.ParseBackend(c.Kernel); !ok {
			return fmt.Errorf("invalid kernel %q", c.Kernel)
		}
	}
	if _, err := c.Memory.LimitBytes(); err != nil {
		return err
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	return nil
}

// Backend returns the forced kernel backend, if any.
func (c *Config) Backend() (kernel.Backend, bool) {
	if c.Kernel == "" {
		return 0, false
	}
	return kernel.ParseBackend(c.Kernel)
}

// LimitBytes parses Limit. It returns 0 for an unlimited budget.
func (m MemoryConfig) LimitBytes() (int64, error) {
	if m.Limit == "" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(m.Limit)
	if err != nil {
		return 0, fmt.Errorf("invalid memory limit %q: %w", m.Limit, err)
	}
	if n > 1<<62 {
		return 0, fmt.Errorf("memory limit %q too large", m.Limit)
	}
	return int64(n), nil
}

// SlogLevel parses Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}
	return level, nil
}
