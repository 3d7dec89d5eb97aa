package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tatianab/no-escape/internal/logger"
)

// Config holds the application configuration.
type Config struct {
	// LevelsDir replaces the embedded campaign when set.
	LevelsDir string `yaml:"levels_dir"`

	// Campaign is the manifest file inside the levels directory.
	Campaign string `yaml:"campaign"`

	// DebugCommands enables give, tp and durset.
	DebugCommands bool `yaml:"debug_commands"`

	// Pace scales every pause between levels. Zero skips them.
	Pace time.Duration `yaml:"pace"`

	Logging logger.Config `yaml:"logging"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Campaign:      "campaign.yaml",
		DebugCommands: true,
		Pace:          time.Second,
		Logging:       logger.DefaultConfig(),
	}
}

// LoadConfig reads path on top of the defaults and then applies
// environment overrides. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("NOESCAPE_LEVELS_DIR"); v != "" {
		cfg.LevelsDir = v
	}
	if v := os.Getenv("NOESCAPE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("NOESCAPE_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
	if v := os.Getenv("NOESCAPE_DEBUG_COMMANDS"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("NOESCAPE_DEBUG_COMMANDS: %w", err)
		}
		cfg.DebugCommands = enabled
	}
	return nil
}
