package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"numclass/internal/classify"
)

// DefaultPath is the config file consulted when --config is not given.
const DefaultPath = "numclass.yaml"

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid config")

// validate is shared; validator.New caches struct metadata.
var validate = validator.New()

// Config holds all numclass configuration.
type Config struct {
	// Range to classify (inclusive)
	Range RangeConfig `yaml:"range" json:"range"`

	// Output rendering
	Output OutputConfig `yaml:"output" json:"output"`

	// Logging
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// RangeConfig configures the classified integer range. Lower > Upper is
// allowed and classifies nothing.
type RangeConfig struct {
	Lower int `yaml:"lower" json:"lower"`
	Upper int `yaml:"upper" json:"upper"`
}

// OutputConfig configures how results are written to stdout.
type OutputConfig struct {
	Format string `yaml:"format" json:"format" validate:"oneof=text json yaml" jsonschema:"enum=text,enum=json,enum=yaml"`
	Color  bool   `yaml:"color" json:"color"` // style labels when stdout is a terminal
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Range: RangeConfig{
			Lower: classify.DefaultRange.Lower,
			Upper: classify.DefaultRange.Upper,
		},
		Output: OutputConfig{
			Format: "text",
			Color:  false,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// ToRange converts the range section into a classification range.
func (r RangeConfig) ToRange() classify.Range {
	return classify.Range{Lower: r.Lower, Upper: r.Upper}
}

// Load loads configuration from a YAML file layered over the defaults.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Normalize lowercases and trims the enumerated fields so "JSON" and
// " yaml " are accepted.
func (c *Config) Normalize() {
	c.Output.Format = normalizeName(c.Output.Format)
	c.Logging.Level = normalizeName(c.Logging.Level)
	c.Logging.Format = normalizeName(c.Logging.Format)
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Validate checks enumerated fields. It does not reject an inverted range.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
