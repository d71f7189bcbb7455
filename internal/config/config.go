package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Output formats accepted by list and search.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// ErrInvalidOutput is returned for an output format other than text, json or yaml.
var ErrInvalidOutput = errors.New("invalid output format")

type Config struct {
	File   string `toml:"file"`
	Days   int    `toml:"days"`
	Output string `toml:"output"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		Days:   7,
		Output: OutputText,
	}
}

// Load reads path on top of Default. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}

	if cfg.Days <= 0 {
		cfg.Days = 1
	}
	output, err := ParseOutput(cfg.Output)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.Output = output

	return cfg, nil
}

// ParseOutput normalizes an output format name; empty means text.
func ParseOutput(value string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", OutputText:
		return OutputText, nil
	case OutputJSON:
		return OutputJSON, nil
	case OutputYAML, "yml":
		return OutputYAML, nil
	default:
		return "", fmt.Errorf("%w %q (expected text|json|yaml)", ErrInvalidOutput, value)
	}
}
