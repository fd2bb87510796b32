package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds runtime configuration loaded from environment variables.
//
// The credential values implement the shared-password demo scheme of the
// original workspace: they are configuration, not secrets, and the scheme
// is a placeholder rather than a security boundary. Do not replace it with
// hashed credentials without changing the access rules themselves.
type Config struct {
	DatabaseURL          string
	SessionSecret        string
	SessionIssuer        string
	SuperAdminUsername   string
	SuperAdminSecret     string
	DemoSecret           string
	FallbackDir          string
	StatusSampleSeconds  int
	StatusHistorySamples int
	CorsOrigins          []string
}

func Load() Config {
	return Config{
		DatabaseURL:          envOr("DATABASE_URL", ""),
		SessionSecret:        envOr("SESSION_SECRET", "ui-hub-dev-secret"),
		SessionIssuer:        envOr("SESSION_ISSUER", "uihub"),
		SuperAdminUsername:   envOr("SUPER_ADMIN_USERNAME", "mishatrick"),
		SuperAdminSecret:     envOr("SUPER_ADMIN_SECRET", "2107m"),
		DemoSecret:           envOr("DEMO_SECRET", "apple"),
		FallbackDir:          envOr("FALLBACK_DIR", "storage/fallback"),
		StatusSampleSeconds:  envOrInt("STATUS_SAMPLE_INTERVAL", 5),
		StatusHistorySamples: envOrInt("STATUS_HISTORY_SAMPLES", 120),
		CorsOrigins:          parseCSV(envOr("CORS_ORIGINS", "")),
	}
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value != "" {
			items = append(items, value)
		}
	}
	return items
}
