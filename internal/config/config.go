// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultMaxRetries   = 3
	defaultRetryBackoff = 200 * time.Millisecond
	defaultPort         = "8080"
	defaultSessionDB    = "sessions.db"
	defaultLogLevel     = "info"
)

type Config struct {
	SpotifyClientID     string
	SpotifyClientSecret string
	SpotifyAPIURL       string
	SpotifyTokenURL     string

	GeniusAccessToken string
	GeniusAPIURL      string

	StrictTitleMatch bool

	MaxRetries   int
	RetryBackoff time.Duration

	LogLevel      string
	Port          string
	SessionDBPath string
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	// .env is optional; Lambda and containers set real env vars.
	_ = godotenv.Load()

	cfg := &Config{
		SpotifyClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
		SpotifyClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
		SpotifyAPIURL:       os.Getenv("SPOTIFY_API_URL"),
		SpotifyTokenURL:     os.Getenv("SPOTIFY_TOKEN_URL"),
		GeniusAccessToken:   os.Getenv("GENIUS_ACCESS_TOKEN"),
		GeniusAPIURL:        os.Getenv("GENIUS_API_URL"),
		LogLevel:            os.Getenv("LOG_LEVEL"),
		Port:                os.Getenv("PORT"),
		SessionDBPath:       os.Getenv("SESSION_DB_PATH"),
		MaxRetries:          defaultMaxRetries,
		RetryBackoff:        defaultRetryBackoff,
	}

	for _, req := range []struct {
		name, val string
	}{
		{"SPOTIFY_CLIENT_ID", cfg.SpotifyClientID},
		{"SPOTIFY_CLIENT_SECRET", cfg.SpotifyClientSecret},
		{"GENIUS_ACCESS_TOKEN", cfg.GeniusAccessToken},
	} {
		if req.val == "" {
			return nil, fmt.Errorf("required env var %s is not set", req.name)
		}
	}

	if v := os.Getenv("STRICT_TITLE_MATCH"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("parsing STRICT_TITLE_MATCH: %w", err)
		}
		cfg.StrictTitleMatch = strict
	}

	if v := os.Getenv("PROVIDER_MAX_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("PROVIDER_MAX_RETRIES must be a positive integer, got %q", v)
		}
		cfg.MaxRetries = n
	}

	if v := os.Getenv("PROVIDER_RETRY_BACKOFF_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms < 1 {
			return nil, fmt.Errorf("PROVIDER_RETRY_BACKOFF_MS must be a positive integer, got %q", v)
		}
		cfg.RetryBackoff = time.Duration(ms) * time.Millisecond
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.SessionDBPath == "" {
		cfg.SessionDBPath = defaultSessionDB
	}

	return cfg, nil
}
