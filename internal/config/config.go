package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// APIBaseURL is the origin of the backend; the /api prefix is added by
	// the transport layer.
	APIBaseURL string

	// StatePath is the local SQLite file holding the session token and the
	// daily shopping list.
	StatePath string

	LogLevel string
	ChartDir string
}

// Load reads configuration from the environment, with an optional .env file.
func Load() *Config {
	// Missing .env is fine; real env vars win either way.
	_ = godotenv.Load()

	return &Config{
		APIBaseURL: getEnv("FAMIGLIA_API_URL", "http://localhost:3000"),
		StatePath:  getEnv("FAMIGLIA_STATE_PATH", "famiglia.db"),
		LogLevel:   getEnv("FAMIGLIA_LOG_LEVEL", "info"),
		ChartDir:   getEnv("FAMIGLIA_CHART_DIR", "."),
	}
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return fmt.Errorf("FAMIGLIA_API_URL is required")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("FAMIGLIA_API_URL is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("FAMIGLIA_API_URL must use http or https, got %q", u.Scheme)
	}
	if strings.TrimSpace(c.StatePath) == "" {
		return fmt.Errorf("FAMIGLIA_STATE_PATH is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
