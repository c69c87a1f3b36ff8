// Package config loads the YAML configuration of the dnacoder command.
package config

import (
	"fmt"
	"os"

	"github.com/arloliu/dnacoder/errs"
	"github.com/arloliu/dnacoder/format"
	"github.com/arloliu/dnacoder/internal/logging"
	"gopkg.in/yaml.v3"
)

// Config represents the dnacoder configuration.
type Config struct {
	// Variant is the codec used for new resources: "three" or "four".
	Variant string `yaml:"variant"`
	// Compression is the payload compression: "none", "zstd", "s2" or "lz4".
	Compression string `yaml:"compression"`
	// BufferSize is the logical copy chunk size in bytes.
	BufferSize int     `yaml:"buffer_size"`
	Logging    Logging `yaml:"logging"`
}

// Logging contains logging configuration.
type Logging struct {
	Level   string `yaml:"level"`
	Backend string `yaml:"backend"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Variant:     "four",
		Compression: "none",
		BufferSize:  32 * 1024,
		Logging: Logging{
			Level:   logging.LevelInfo,
			Backend: logging.BackendZap,
		},
	}
}

// LoadConfig loads configuration from path on top of DefaultConfig and validates it.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field and returns the first problem found.
func (c *Config) Validate() error {
	if _, err := c.VariantType(); err != nil {
		return err
	}
	if _, err := c.CompressionType(); err != nil {
		return err
	}
	if c.BufferSize <= 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidBufferSize, c.BufferSize)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}

	switch c.Logging.Backend {
	case "", logging.BackendZap, logging.BackendLogrus, logging.BackendNop:
	default:
		return fmt.Errorf("invalid log backend %q", c.Logging.Backend)
	}

	return nil
}

// VariantType returns the parsed Variant.
func (c *Config) VariantType() (format.Variant, error) {
	v, ok := format.ParseVariant(c.Variant)
	if !ok {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidVariant, c.Variant)
	}

	return v, nil
}

// CompressionType returns the parsed CompressionType.
func (c *Config) CompressionType() (format.CompressionType, error) {
	ct, ok := format.ParseCompressionType(c.Compression)
	if !ok {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCompression, c.Compression)
	}

	return ct, nil
}
