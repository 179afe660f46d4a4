package config

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const (
	// ProductionAPIURL is the backend serving examfit.in.
	ProductionAPIURL = "https://backend.examfit.in/api"
	// DevAPIURL is the local development backend.
	DevAPIURL = "http://localhost:4000/api"
)

type Config struct {
	APIBaseURL  string
	SessionFile string
	LogLevel    string
}

func Load() *Config {
	return &Config{
		APIBaseURL:  resolveAPIBaseURL(),
		SessionFile: getEnv("EXAMFIT_SESSION_FILE", defaultSessionFile()),
		LogLevel:    getEnv("EXAMFIT_LOG_LEVEL", "info"),
	}
}

// resolveAPIBaseURL picks the backend host. An explicit EXAMFIT_API_URL wins;
// otherwise EXAMFIT_ENV=production maps to the examfit.in backend and
// everything else falls back to the local development API.
func resolveAPIBaseURL() string {
	if url := os.Getenv("EXAMFIT_API_URL"); url != "" {
		return url
	}
	if os.Getenv("EXAMFIT_ENV") == "production" {
		return ProductionAPIURL
	}
	return DevAPIURL
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".examfit-session.json"
	}
	return filepath.Join(home, ".examfit", "session.json")
}

func (c *Config) ParseLogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
