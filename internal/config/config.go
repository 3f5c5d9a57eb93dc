package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Preference backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// DefaultFeedbackDelay is how long an answered question stays on screen
// with its correct/wrong highlighting before the quiz moves on.
const DefaultFeedbackDelay = 900 * time.Millisecond

type Config struct {
	// FeedbackDelay is a duration string such as "900ms".
	FeedbackDelay string `yaml:"feedback_delay"`
	Log           struct {
		Mode string `yaml:"mode"`
		File string `yaml:"file"`
	} `yaml:"log"`
	Preferences struct {
		Backend string `yaml:"backend"`
		DB      string `yaml:"db"`
	} `yaml:"preferences"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	var cfg Config
	cfg.FeedbackDelay = DefaultFeedbackDelay.String()
	cfg.Log.Mode = "dev"
	cfg.Preferences.Backend = BackendSQLite
	return cfg
}

// Load reads YAML config from path on top of the defaults. A missing file is
// not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted silently.
func (c Config) Validate() error {
	switch c.Preferences.Backend {
	case "", BackendSQLite, BackendMemory:
	case BackendRedis:
		if c.Redis.Addr == "" {
			return errors.New("preferences.backend is redis but redis.addr is empty")
		}
	default:
		return fmt.Errorf("unknown preferences.backend %q", c.Preferences.Backend)
	}
	if c.FeedbackDelay != "" {
		d, err := time.ParseDuration(c.FeedbackDelay)
		if err != nil {
			return fmt.Errorf("feedback_delay: %w", err)
		}
		if d < 0 {
			return fmt.Errorf("feedback_delay must not be negative, got %s", d)
		}
	}
	return nil
}

// Delay returns the feedback delay, falling back to the default.
func (c Config) Delay() time.Duration {
	return DurationOr(c.FeedbackDelay, DefaultFeedbackDelay)
}

// DurationOr parses a duration string or returns the fallback if empty or invalid.
func DurationOr(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}

// DefaultPath resolves the config file path in priority order:
// 1. QUIZBOX_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/quizbox/config.yaml
// 3. ~/.config/quizbox/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("QUIZBOX_CONFIG"); p != "" {
		return p, nil
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "quizbox", "config.yaml"), nil
}
