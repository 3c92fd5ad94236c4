package config

import (
	"fmt"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
	"os"
)

type Window struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"`
	Title  string  `yaml:"title"`
}

type Config struct {
	Window Window `yaml:"window"`

	// path to a storyboard file, empty uses the embedded demo
	Storyboard string `yaml:"storyboard"`

	// keep completed transforms so the timeline can be scrubbed backwards
	RetainCompleted bool `yaml:"retain_completed"`

	Rate       float64 `yaml:"rate"`
	SeekStepMs float64 `yaml:"seek_step_ms"`

	LogLevel string `yaml:"log_level"` // trace, debug, info, warn, error
	Profile  bool   `yaml:"profile"`
}

func Default() *Config {
	return &Config{
		Window: Window{
			Width:  800,
			Height: 600,
			Scale:  1,
			Title:  "Transforms",
		},
		RetainCompleted: true,
		Rate:            1,
		SeekStepMs:      500,
		LogLevel:        "info",
	}
}

// Load reads the file at path on top of the defaults.
func Load(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	return Parse(buf)
}

func Parse(buf []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(buf, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func Save(path string, c *Config) error {
	buf, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return os.WriteFile(path, buf, 0644)
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Window.Scale <= 0 {
		return fmt.Errorf("invalid window scale %v", c.Window.Scale)
	}

	if c.SeekStepMs <= 0 {
		return fmt.Errorf("invalid seek step %v", c.SeekStepMs)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	return nil
}

// Level returns the configured log level, info if it can not be parsed.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return level
}
