// Package config loads the roman CLI configuration.
//
// Sources, lowest precedence first:
//
//  1. Default()
//  2. an optional TOML file
//  3. ROMAN_* environment variables
//
// Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/katalvlaran/roman/internal/logging"
	"github.com/katalvlaran/roman/internal/render"
	"github.com/katalvlaran/roman/numeral"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds every setting of the roman CLI.
type Config struct {
	// Format is the output format: text, json or yaml.
	Format string `toml:"format" env:"ROMAN_FORMAT"`

	// Notation is subtractive or additive.
	Notation string `toml:"notation" env:"ROMAN_NOTATION"`

	// MaxValue caps the accepted input, at most numeral.MaxValue.
	MaxValue int `toml:"max_value" env:"ROMAN_MAX_VALUE"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `toml:"log_level" env:"ROMAN_LOG_LEVEL"`

	// LogFormat is json or text.
	LogFormat string `toml:"log_format" env:"ROMAN_LOG_FORMAT"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format:    render.FormatText,
		Notation:  numeral.Subtractive.String(),
		MaxValue:  numeral.MaxValue,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Load builds a Config from defaults, the TOML file at path (skipped when
// path is empty) and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("decode %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)

			return Config{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if !render.IsFormat(c.Format) {
		return fmt.Errorf("%w: format %q", ErrInvalidConfig, c.Format)
	}
	if _, err := numeral.ParseNotation(c.Notation); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.MaxValue < numeral.MinValue || c.MaxValue > numeral.MaxValue {
		return fmt.Errorf("%w: max_value %d not in [%d, %d]", ErrInvalidConfig, c.MaxValue, numeral.MinValue, numeral.MaxValue)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// EncoderOptions translates c into numeral options.
func (c Config) EncoderOptions() ([]numeral.Option, error) {
	n, err := numeral.ParseNotation(c.Notation)
	if err != nil {
		return nil, err
	}

	return []numeral.Option{
		numeral.WithNotation(n),
		numeral.WithUpperBound(c.MaxValue),
	}, nil
}
