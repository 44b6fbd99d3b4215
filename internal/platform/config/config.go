package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	pstrings "clinic/pkg/platform/strings"
)

// Server captures process level configuration for the clinic binaries.
type Server struct {
	Addr        string
	MetricsAddr string
	LogLevel    string
	LogFormat   string
	// RateLimit is the number of requests allowed per client IP per minute.
	RateLimit   int
	CORSOrigins []string
}

const (
	defaultAddr        = ":8080"
	defaultMetricsAddr = ":9090"
	defaultRateLimit   = 120
)

// Load reads a .env file from the working directory when one exists and then
// builds the configuration from the environment.
func Load() (Server, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Server{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Server config from CLINIC_* environment variables.
func FromEnv() (Server, error) {
	cfg := Server{
		Addr:        envString("CLINIC_ADDR", defaultAddr),
		MetricsAddr: envString("CLINIC_METRICS_ADDR", defaultMetricsAddr),
		LogLevel:    strings.ToLower(envString("CLINIC_LOG_LEVEL", "info")),
		LogFormat:   strings.ToLower(envString("CLINIC_LOG_FORMAT", "text")),
		RateLimit:   defaultRateLimit,
		CORSOrigins: pstrings.SplitUnique(envString("CLINIC_CORS_ORIGINS", "*")),
	}

	if raw := os.Getenv("CLINIC_RATE_LIMIT"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return Server{}, fmt.Errorf("CLINIC_RATE_LIMIT must be a positive integer, got %q", raw)
		}
		cfg.RateLimit = limit
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return Server{}, fmt.Errorf("CLINIC_LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}
	return cfg, nil
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
