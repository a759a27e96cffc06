// Package config reads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the server settings.
type Config struct {
	HTTPAddr        string
	Content         string // built-in content name or path to a YAML file
	CORSOrigins     []string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// Load reads an optional .env file and then the environment. A missing
// .env file is not an error; variables already set in the environment win.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config.Load: %s: %w", envFile, err)
		}
	}
	return FromEnv()
}

// FromEnv reads Config from SCREENTIME_* variables, applying defaults.
func FromEnv() (Config, error) {
	reqTimeout, err := envDuration("SCREENTIME_REQUEST_TIMEOUT", 30*time.Second)
	if err != nil {
		return Config{}, err
	}
	shutdownTimeout, err := envDuration("SCREENTIME_SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	return Config{
		HTTPAddr:        envOr("SCREENTIME_HTTP_ADDR", ":8080"),
		Content:         envOr("SCREENTIME_CONTENT", "default"),
		CORSOrigins:     csvOr("SCREENTIME_CORS_ORIGINS", "http://localhost:3000,http://localhost:8080"),
		RequestTimeout:  reqTimeout,
		ShutdownTimeout: shutdownTimeout,
	}, nil
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envDuration(k string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", k, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config: %s must be positive, got %s", k, v)
	}
	return d, nil
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
