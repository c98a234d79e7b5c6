// Package config provides configuration loading for the synperm commands.
//
// Configuration is loaded from a single YAML file specified by:
//   - the --config flag, or
//   - the SYNPERM_CONFIG environment variable.
//
// Without either, defaults are used. Command-line flags override file values.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tikz/synperm/pdb"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "SYNPERM_CONFIG"

// Config is the configuration shared by the synperm commands.
type Config struct {
	// Chain is the chain token whose residues are permuted.
	Chain string `yaml:"chain"`

	// Manifest enables writing a JSON manifest next to the permutations.
	Manifest bool `yaml:"manifest"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// TopologyFile is the default topology table for the sheet command.
	TopologyFile string `yaml:"topology_file"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Chain:    pdb.DefaultChain,
		LogLevel: "info",
	}
}

// Load reads path over the defaults. An empty path falls back to
// SYNPERM_CONFIG, and then to the defaults alone.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if c.Chain == "" || strings.ContainsAny(c.Chain, " \t\r\n") {
		return fmt.Errorf("chain must be a single token, got %q", c.Chain)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, errors.New("log_level must be one of debug, info, warn, error")
	}
	return level, nil
}
