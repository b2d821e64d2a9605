package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port int
}

// Load reads the configuration from the environment once at startup.
// The returned value is immutable for the process lifetime.
func Load() *Config {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
	}

	// Port must be a positive integer
	if cfg.Port <= 0 {
		cfg.Port = 8080
	}

	return cfg
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
