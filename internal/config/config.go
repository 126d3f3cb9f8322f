package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the marketplace server. Values come
// from environment variables, optionally loaded from a .env file.
type Config struct {
	Port             string
	LogLevel         string
	NotifyEndpoint   string
	NotifyTimeout    time.Duration
	NotifyMaxRetries int
	NotifyBackoff    time.Duration
}

// Load reads configuration from the environment. A missing .env file is not
// an error; explicit environment variables always win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:             getEnv("PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		NotifyEndpoint:   getEnv("NOTIFY_ENDPOINT", "http://localhost:8025/send"),
		NotifyTimeout:    getDuration("NOTIFY_TIMEOUT", 5*time.Second),
		NotifyMaxRetries: getInt("NOTIFY_MAX_RETRIES", 5),
		NotifyBackoff:    getDuration("NOTIFY_BACKOFF", 2*time.Second),
	}
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
