// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
)

// Production is the ENVIRONMENT value that enables production rules:
// Twilio credentials become required and CORS defaults to any origin.
const Production = "production"

// mobileOrigins are the origins of the Capacitor/Ionic app shells. They are
// allowed in every environment unless CORS_ORIGINS overrides the list.
var mobileOrigins = []string{"capacitor://localhost", "ionic://localhost"}

// devOrigins are added in development so a local frontend can call the API.
var devOrigins = []string{
	"http://localhost:3000",
	"http://localhost:8000",
	"http://127.0.0.1:8000",
}

// Config holds all configuration values for the API server and CLI.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8000".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// Environment is "development" (default) or "production".
	Environment string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Set CORS_ORIGINS to a comma-separated list to override the
	// environment's default.
	CORSOrigins []string

	// APIKeys are accepted in the X-API-Key header on admin routes.
	// Empty means admin routes reject every request.
	APIKeys []string

	// Twilio credentials. Required in production; in development the server
	// logs messages instead of sending them when any is missing.
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string

	// GMapsAPIKey enables /nearby-places. Optional.
	GMapsAPIKey string

	// FrontendDir is served at / and /static when it exists. Defaults to "frontend".
	FrontendDir string

	// MigrateOnStart applies pending migrations before the server listens.
	MigrateOnStart bool

	// RateLimitDisabled turns off per-IP rate limiting.
	RateLimitDisabled bool
}

// IsProduction reports whether production rules apply.
func (c Config) IsProduction() bool {
	return c.Environment == Production
}

// TwilioEnabled reports whether all Twilio credentials are present.
func (c Config) TwilioEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioFromNumber != ""
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, or
// naming the first malformed one.
func Load() (Config, error) {
	cfg := Config{
		Port:             getEnv("PORT", "8000"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		Environment:      strings.ToLower(getEnv("ENVIRONMENT", "development")),
		APIKeys:          splitCSV(os.Getenv("API_KEYS")),
		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
		GMapsAPIKey:      os.Getenv("GMAPS_API_KEY"),
		FrontendDir:      getEnv("FRONTEND_DIR", "frontend"),
	}

	var err error
	if cfg.MigrateOnStart, err = getBool("MIGRATE_ON_START"); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitDisabled, err = getBool("RATE_LIMIT_DISABLED"); err != nil {
		return Config{}, err
	}

	cfg.CORSOrigins = splitCSV(os.Getenv("CORS_ORIGINS"))
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = defaultOrigins(cfg.IsProduction())
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if cfg.IsProduction() {
		for name, v := range map[string]string{
			"TWILIO_ACCOUNT_SID": cfg.TwilioAccountSID,
			"TWILIO_AUTH_TOKEN":  cfg.TwilioAuthToken,
			"TWILIO_FROM_NUMBER": cfg.TwilioFromNumber,
		} {
			if v == "" {
				missing = append(missing, name)
			}
		}
	}

	if len(missing) > 0 {
		slices.Sort(missing)
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// defaultOrigins returns the CORS list used when CORS_ORIGINS is unset.
func defaultOrigins(production bool) []string {
	if production {
		return []string{"*"}
	}
	out := append([]string{}, mobileOrigins...)
	return append(out, devOrigins...)
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getBool parses a boolean variable. Unset means false.
func getBool(key string) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", key, v)
	}
	return b, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
