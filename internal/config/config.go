// Package config loads rpap settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// DefaultSample is shown in the editor on first launch.
const DefaultSample = "This\tis\tsample data\n" +
	"Hugo Lloris\tGoalkeeper\t France\n" +
	"Jan Vertonghen\tDefender\t Belgium\n" +
	"Ben Davies\tDefender\t Wales\n" +
	"Eric Dier\tMidfielder\t England\n" +
	"Moussa Sissoko\tMidfielder\t France\n" +
	"Dele Alli\tMidfielder\t England\n" +
	"Lucas Moura\tMidfielder\t Brazil\n" +
	"Son Heung-Min\tForward\t South Korea"

// Config holds all rpap configuration.
type Config struct {
	Shuffle ShuffleConfig `yaml:"shuffle"`
	UI      UIConfig      `yaml:"ui"`
	Log     LogConfig     `yaml:"log"`

	// Sample pre-fills the editor when no input file is given.
	Sample string `yaml:"sample"`
}

type ShuffleConfig struct {
	// Uniform switches to an unbiased Fisher-Yates swap range.
	Uniform bool  `yaml:"uniform"`
	Seed    int64 `yaml:"seed"` // 0 = time-seeded
}

type UIConfig struct {
	Fullscreen        bool   `yaml:"fullscreen"`
	Theme             string `yaml:"theme"` // dark, light
	AnimationFrames   int    `yaml:"animation_frames"`
	AnimationInterval string `yaml:"animation_interval"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme:             "dark",
			AnimationFrames:   8,
			AnimationInterval: "40ms",
		},
		Log: LogConfig{
			Level: "info",
		},
		Sample: DefaultSample,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/rpap/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "rpap", "config.yaml"), nil
}

// Load reads path on top of the defaults and applies environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("RPAP_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: RPAP_SEED=%q: %v", ErrInvalid, v, err)
		}
		c.Shuffle.Seed = seed
	}
	if v := os.Getenv("RPAP_UNIFORM"); v != "" {
		uniform, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: RPAP_UNIFORM=%q: %v", ErrInvalid, v, err)
		}
		c.Shuffle.Uniform = uniform
	}
	if v := os.Getenv("RPAP_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("RPAP_THEME"); v != "" {
		c.UI.Theme = strings.ToLower(v)
	}
	return nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.UI.AnimationFrames < 0 {
		return fmt.Errorf("%w: ui.animation_frames must be >= 0, got %d", ErrInvalid, c.UI.AnimationFrames)
	}
	if _, err := c.AnimationInterval(); err != nil {
		return err
	}
	switch c.UI.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("%w: ui.theme must be dark or light, got %q", ErrInvalid, c.UI.Theme)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

// AnimationInterval parses ui.animation_interval.
func (c *Config) AnimationInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.UI.AnimationInterval)
	if err != nil {
		return 0, fmt.Errorf("%w: ui.animation_interval: %v", ErrInvalid, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: ui.animation_interval must be positive", ErrInvalid)
	}
	return d, nil
}
