package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the client reads from the environment. The API
// host is configuration, never hardcoded; a .env file in the working
// directory is honored when present.
type Config struct {
	AppEnv      string        `envconfig:"APP_ENV" default:"dev"`
	APIBaseURL  string        `envconfig:"FUTBOLYA_API_URL" default:"http://localhost:3000"`
	SessionFile string        `envconfig:"FUTBOLYA_SESSION_FILE"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (*Config, error) {
	// Missing .env is fine; explicit env vars always win.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}

	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	cfg.APIBaseURL = strings.TrimRight(strings.TrimSpace(cfg.APIBaseURL), "/")
	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("FUTBOLYA_API_URL is empty")
	}

	if cfg.SessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve session file: %w", err)
		}
		cfg.SessionFile = filepath.Join(home, ".futbolya", "session.json")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.AppEnv == "dev" || c.AppEnv == "development"
}
