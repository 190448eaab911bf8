// Package config loads markup CLI settings from a YAML file, .env files and
// the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by Load and ApplyEnv.
const (
	EnvConfig     = "MARKUP_CONFIG"
	EnvTheme      = "MARKUP_THEME"
	EnvCapacity   = "MARKUP_CAPACITY"
	EnvStandalone = "MARKUP_STANDALONE"
)

// Config holds CLI defaults. Command line flags override every field.
type Config struct {
	Theme       string `yaml:"theme,omitempty"`
	Capacity    int    `yaml:"capacity,omitempty"`
	Standalone  bool   `yaml:"standalone,omitempty"`
	Title       string `yaml:"title,omitempty"`
	FrontMatter *bool  `yaml:"front_matter,omitempty"`
	Lang        string `yaml:"lang,omitempty"`
}

// Default returns the built-in settings.
func Default() Config {
	fm := true
	return Config{
		Theme:       "default",
		FrontMatter: &fm,
		Lang:        "en",
	}
}

// StripFrontMatter reports whether front matter should be removed before
// conversion.
func (c Config) StripFrontMatter() bool {
	return c.FrontMatter == nil || *c.FrontMatter
}

// LoadDotEnv loads .env and .env.local when present. Variables already set in
// the environment are kept.
func LoadDotEnv() error {
	for _, name := range []string{".env", ".env.local"} {
		if _, err := os.Stat(name); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

// Load returns Default overlaid with the YAML file at path and then with the
// environment. An empty path falls back to $MARKUP_CONFIG; when that is empty
// too only defaults and the environment apply.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to unmarshal config %s: %w", path, err)
		}
		if cfg.Capacity < 0 {
			return cfg, fmt.Errorf("config %s: capacity must be >= 0", path)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from MARKUP_* variables.
func (c *Config) ApplyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		c.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvCapacity)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("%s: invalid capacity %q", EnvCapacity, v)
		}
		c.Capacity = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvStandalone)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: invalid boolean %q", EnvStandalone, v)
		}
		c.Standalone = b
	}
	return nil
}
