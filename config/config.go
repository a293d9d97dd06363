// Package config loads and validates roadref settings.
//
// Settings come from three layers, later layers winning:
//
//  1. Default().
//  2. A YAML file (Load).
//  3. Environment variables prefixed ROADREF_, optionally seeded from a
//     .env file (LoadWithEnv).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvPathLengthTolerance = "ROADREF_PATH_LENGTH_TOLERANCE"
	EnvLogLevel            = "ROADREF_LOG_LEVEL"
	EnvLogFormat           = "ROADREF_LOG_FORMAT"
	EnvTracingEnabled      = "ROADREF_TRACING_ENABLED"
)

// DefaultPathLengthTolerance accepts paths within 30% of the expected length.
const DefaultPathLengthTolerance = 0.3

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the top-level configuration.
//
// Thread Safety: safe to read concurrently. Not safe to modify after creation.
type Config struct {
	// PathLengthTolerance is the accepted relative deviation of a segment
	// path from its expected length, in (0, 1].
	PathLengthTolerance float64 `yaml:"path_length_tolerance" validate:"gt=0,lte=1"`

	// Log controls the process logger.
	Log LogConfig `yaml:"log"`

	// Tracing controls span export.
	Tracing TracingConfig `yaml:"tracing"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// TracingConfig toggles span export to stdout.
type TracingConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		PathLengthTolerance: DefaultPathLengthTolerance,
		Log:                 LogConfig{Level: "info", Format: "text"},
	}
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Load reads a YAML file on top of Default and validates the result. An empty
// path returns the validated defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %q: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadWithEnv is Load followed by environment overrides. If envFile is not
// empty it is read with godotenv first; variables already present in the
// process environment take precedence over the file.
func LoadWithEnv(path, envFile string) (*Config, error) {
	cfg := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("config: load env file %q: %w", envFile, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPathLengthTolerance); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvPathLengthTolerance, v, err)
		}
		c.PathLengthTolerance = f
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvLogFormat); ok {
		c.Log.Format = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvTracingEnabled); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvTracingEnabled, v, err)
		}
		c.Tracing.Enabled = b
	}

	return nil
}
