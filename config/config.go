package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultBaseURL = "http://localhost:8000/api"
	defaultTimeout = 15 * time.Second
)

// Config holds the client settings read from the environment.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Load reads .env if present and resolves settings with defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	cfg := Config{
		BaseURL: defaultBaseURL,
		Timeout: defaultTimeout,
	}

	if url := os.Getenv("GRADLINK_API_URL"); url != "" {
		cfg.BaseURL = url
	}

	if raw := os.Getenv("GRADLINK_HTTP_TIMEOUT"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}

	return cfg
}
