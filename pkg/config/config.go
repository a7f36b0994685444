// Package config handles loading and managing gaussdecay configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gaussdecay/gaussdecay/pkg/decay"
)

// MaxPrecision bounds the number of decimals printed for scores.
const MaxPrecision = 15

// Config is the top-level configuration for gaussdecay.
type Config struct {
	Decay  DecayConfig  `yaml:"decay"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// DecayConfig holds the parameters of the decay function.
type DecayConfig struct {
	Origin float64 `yaml:"origin"`
	Scale  float64 `yaml:"scale"`
	Decay  float64 `yaml:"decay"`
	Offset float64 `yaml:"offset"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Format    string `yaml:"format"`    // text or json
	Precision int    `yaml:"precision"` // decimals in text output
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Decay: DecayConfig{
			Origin: 0,
			Scale:  1,
			Decay:  decay.DefaultDecay,
			Offset: decay.DefaultOffset,
		},
		Output: OutputConfig{
			Format:    "text",
			Precision: 4,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// FindConfigFile looks for .gaussdecay/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".gaussdecay", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// Validate checks the output and log settings. Decay parameters are checked
// by DecayConfig.Function so callers can opt out of that check.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown output format %q (want text or json)", c.Output.Format)
	}
	if c.Output.Precision < 0 || c.Output.Precision > MaxPrecision {
		return fmt.Errorf("precision %d out of range [0, %d]", c.Output.Precision, MaxPrecision)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}

// Function builds a validated decay function from the configured parameters.
func (d DecayConfig) Function() (decay.Gauss, error) {
	g, err := decay.NewValidatedGauss(d.Origin, d.Scale, d.Decay, d.Offset)
	if err != nil {
		return decay.Gauss{}, fmt.Errorf("decay config: %w", err)
	}
	return g, nil
}

// UncheckedFunction builds the decay function without validating it.
func (d DecayConfig) UncheckedFunction() decay.Gauss {
	return decay.NewGaussWithDecay(d.Origin, d.Scale, d.Decay, d.Offset)
}
