package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

type Config struct {
	Seed        int64
	LogLevel    log.Level
	SessionIdle time.Duration
}

func Default() *Config {
	return &Config{
		Seed:        0,
		LogLevel:    log.InfoLevel,
		SessionIdle: 30 * time.Minute,
	}
}

// Load reads an optional .env file, then the GAME21_* environment variables.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := Default()

	if v := os.Getenv("GAME21_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("GAME21_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	if v := os.Getenv("GAME21_LOG_LEVEL"); v != "" {
		level, err := log.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("GAME21_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = level
	}

	if v := os.Getenv("GAME21_SESSION_IDLE"); v != "" {
		idle, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("GAME21_SESSION_IDLE: %w", err)
		}
		if idle <= 0 {
			return nil, fmt.Errorf("GAME21_SESSION_IDLE must be positive, got %s", idle)
		}
		cfg.SessionIdle = idle
	}

	return cfg, nil
}

// ShuffleSeed returns the configured seed, or a time-based one when unset.
func (c *Config) ShuffleSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
