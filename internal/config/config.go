package config

import (
	"os"
	"strings"
	"time"
)

// Config holds the service's environment-driven settings.
type Config struct {
	HTTPAddr  string
	PublicURL string

	// AssetBaseURL is the static server that resolves theme background
	// paths; AssetDir serves the same role from a local directory and wins
	// when both are set. Neither set disables background fetching (plain
	// white pages).
	AssetBaseURL string
	AssetDir     string
	FetchTimeout time.Duration

	AuthEnabled bool
	AuthSecret  string

	CORSOrigins []string
}

// FromEnv reads the configuration from the environment with dev defaults.
func FromEnv() Config {
	return Config{
		HTTPAddr:     envOr("HTTP_ADDR", ":8080"),
		PublicURL:    os.Getenv("PUBLIC_URL"),
		AssetBaseURL: os.Getenv("ASSET_BASE_URL"),
		AssetDir:     os.Getenv("ASSET_DIR"),
		FetchTimeout: envDuration("ASSET_FETCH_TIMEOUT", 15*time.Second),
		AuthEnabled:  envBool("AUTH_ENABLED", false),
		AuthSecret:   envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),
		CORSOrigins:  csvOr("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func envDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
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
