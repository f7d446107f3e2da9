package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for configuration when --config is not set.
var DefaultPath = filepath.Join(".tour", "config.yaml")

// DefaultWordFreqText is the sentence counted by the word frequency step.
const DefaultWordFreqText = "Hello Rust. I am studying Rust. I am counting words Rust."

// ValidFormats lists the supported report formats.
var ValidFormats = []string{"text", "json", "yaml"}

// ValidLevels lists the supported log levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// Config holds all collection tour configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Tour controls which steps run and with which inputs
	Tour TourConfig `yaml:"tour"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Terminal rendering
	UX UXConfig `yaml:"ux"`
}

// TourConfig configures the demonstration run.
type TourConfig struct {
	Offset       int32  `yaml:"offset"`        // added to every element by the iterate step
	WordFreqText string `yaml:"wordfreq_text"` // input of the wordfreq step
	Only         []int  `yaml:"only,omitempty"`
	Format       string `yaml:"format"` // text, json, yaml
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "collection-tour",
		Version: "0.3.0",

		Tour: TourConfig{
			Offset:       50,
			WordFreqText: DefaultWordFreqText,
			Format:       "text",
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},

		UX: UXConfig{
			WordWrap: 80,
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("TOUR_OFFSET"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			c.Tour.Offset = int32(n)
		}
	}
	if v := os.Getenv("TOUR_FORMAT"); v != "" {
		c.Tour.Format = strings.ToLower(v)
	}
	if v := os.Getenv("TOUR_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("TOUR_PLAIN"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.UX.Plain = b
		}
	}
	// https://no-color.org: any non-empty value disables styling
	if os.Getenv("NO_COLOR") != "" {
		c.UX.Plain = true
	}
}

// Validate checks the configuration for unsupported values.
func (c *Config) Validate() error {
	if !slices.Contains(ValidFormats, c.Tour.Format) {
		return fmt.Errorf("invalid report format: %s (valid: %v)", c.Tour.Format, ValidFormats)
	}
	if !slices.Contains(ValidLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLevels)
	}
	if c.Logging.Format != "" && c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("invalid log format: %s (valid: console, json)", c.Logging.Format)
	}
	if c.UX.WordWrap <= 0 {
		return fmt.Errorf("word_wrap must be positive, got %d", c.UX.WordWrap)
	}
	for _, id := range c.Tour.Only {
		if id <= 0 {
			return fmt.Errorf("invalid step id in tour.only: %d", id)
		}
	}
	return nil
}
