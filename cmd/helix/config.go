package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the interpreter settings, from a TOML file or flags.
type Config struct {
	Verbose   bool              `toml:"verbose"`   // Log each instruction.
	Assemble  bool              `toml:"assemble"`  // Source is assembly text.
	Input     string            `toml:"input"`     // Tape input file, or "-".
	Output    string            `toml:"output"`    // Tape output file, or "-".
	Predefine map[string]string `toml:"predefine"` // Assembler equates.

	// Show prints the strand instead of running it.
	Show bool `toml:"-"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Input:  "-",
		Output: "-",
	}
}

// LoadConfig parses a TOML configuration file over the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	conf := DefaultConfig()
	if err := toml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	return conf, nil
}
