// Package config loads shadower CLI configuration.
package config

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/mouse-blink/shadower/internal/domain"
)

// DefaultPath is the config file consulted when --config is not given.
const DefaultPath = ".shadower.yaml"

// Output formats.
const (
	OutputTable = "table"
	OutputYAML  = "yaml"
)

// Environment overrides.
const (
	EnvSDK      = "SHADOWER_SDK"
	EnvLogLevel = "SHADOWER_LOG_LEVEL"
)

// Config holds shadower settings.
type Config struct {
	// SDK is the platform version commands resolve against.
	SDK int `yaml:"sdk"`
	// ResetPolicy is one of before, after or around.
	ResetPolicy string `yaml:"reset_policy"`
	// Parallel bounds matrix workers.
	Parallel int    `yaml:"parallel"`
	LogLevel string `yaml:"log_level"`
	Output   string `yaml:"output"`
	// ManifestDir is where list --save writes manifests.
	ManifestDir string `yaml:"manifest_dir"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		SDK:         25,
		ResetPolicy: domain.ResetBefore.String(),
		Parallel:    1,
		LogLevel:    zapcore.InfoLevel.String(),
		Output:      OutputTable,
		ManifestDir: ".shadower-manifests",
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvSDK); v != "" {
		sdk, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvSDK, v, err)
		}

		c.SDK = sdk
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}

	return nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if c.SDK < 0 {
		return fmt.Errorf("invalid sdk %d: %w", c.SDK, domain.ErrInvalidVersion)
	}

	if c.Parallel < 1 {
		return fmt.Errorf("invalid parallel %d: must be at least 1", c.Parallel)
	}

	if _, err := c.Policy(); err != nil {
		return err
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	switch c.Output {
	case OutputTable, OutputYAML:
	default:
		return fmt.Errorf("invalid output %q (valid: %s, %s)", c.Output, OutputTable, OutputYAML)
	}

	return nil
}

// Policy returns the parsed reset policy.
func (c *Config) Policy() (domain.ResetPolicy, error) {
	return domain.ParseResetPolicy(c.ResetPolicy)
}

// Level returns the parsed log level.
func (c *Config) Level() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return level, fmt.Errorf("invalid log_level: %w", err)
	}

	return level, nil
}
