package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is loaded from the environment, with an optional .env file for
// local development.
type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	DataDir     string `envconfig:"DATA_DIR" default:"./data"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
	CORSOrigins string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173,http://127.0.0.1:5173"`
}

// Load reads and validates the configuration. A missing .env file is not an
// error; the variables may come from the environment directly.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UsePostgres reports whether the persistent store should live in Postgres
// rather than local files.
func (c *Config) UsePostgres() bool {
	return c.DatabaseURL != ""
}

// Origins returns the CORS allow-list as a slice.
func (c *Config) Origins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("config: PORT must not be empty")
	}
	if !c.UsePostgres() && strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("config: DATA_DIR is required when DATABASE_URL is not set")
	}
	if c.UsePostgres() {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
		}
	}
	return nil
}
