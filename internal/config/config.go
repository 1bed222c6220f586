package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nestoca/yamlindent/internal/discover"
	"github.com/nestoca/yamlindent/internal/yml"
)

const rcFile = ".yamlindentrc"

const (
	DefaultIndent      = 2
	DefaultConcurrency = 8
)

type Config struct {
	// Default is the indent size reported for files carrying no indentation signal.
	// Optional, defaults to 2.
	Default int `yaml:"default,omitempty"`

	// Expect is the indent size every file is expected to use when checking.
	// Zero means files only need to be consistent with each other.
	Expect int `yaml:"expect,omitempty"`

	// Extensions of files picked up when walking directories.
	// Optional, defaults to .yaml and .yml.
	Extensions []string `yaml:"extensions,omitempty"`

	// Concurrency is the maximum number of files analyzed in parallel.
	// Optional, defaults to 8.
	Concurrency int `yaml:"concurrency,omitempty"`

	// FilePath is the path to the config file that was loaded.
	FilePath string `yaml:"-"`
}

// Load loads config from given configDir (or user home if not specified).
// A missing config file results in default values.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		configDir = homeDir
	}

	rcPath := filepath.Join(configDir, rcFile)

	var cfg *Config
	_, err := os.Stat(rcPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("checking for %s: %w", rcPath, err)
		}
		// It's ok if config file does not exist, we'll use default values
		cfg = &Config{}
	} else {
		cfg, err = LoadFile(rcPath)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", rcPath, err)
		}
	}

	cfg.FilePath = rcPath
	if err := cfg.applyDefaults(); err != nil {
		return nil, fmt.Errorf("validating %s: %w", rcPath, err)
	}

	return cfg, nil
}

func LoadFile(file string) (*Config, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", file, err)
	}
	cfg := &Config{}
	if err := yml.UnmarshalStrict(content, cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling %s: %w", file, err)
	}
	cfg.FilePath = file
	return cfg, nil
}

func (c *Config) applyDefaults() error {
	if c.Default < 0 || c.Expect < 0 || c.Concurrency < 0 {
		return errors.New("default, expect and concurrency must not be negative")
	}
	if c.Default == 0 {
		c.Default = DefaultIndent
	}
	if c.Concurrency == 0 {
		c.Concurrency = DefaultConcurrency
	}
	if len(c.Extensions) == 0 {
		c.Extensions = discover.DefaultExtensions
	}
	return nil
}

type configKey struct{}

func ToContext(parent context.Context, cfg *Config) context.Context {
	return context.WithValue(parent, configKey{}, cfg)
}

func FromContext(ctx context.Context) *Config {
	cfg, _ := ctx.Value(configKey{}).(*Config)
	return cfg
}
