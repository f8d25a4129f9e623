package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/shayangolmezerji/ChargeAPI/internal/utils"
)

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters and is built once at
// startup, then passed down read-only.
type Config struct {
	Port string
	Env  string

	Reseller ResellerConfig
}

// ResellerConfig contains the credential and endpoints for the chr724
// EasyCharge reseller API.
type ResellerConfig struct {
	// WebServiceID is the reseller credential. It may legitimately be empty
	// at startup; requests fail with a configuration error until it is set.
	WebServiceID string
	RedirectURL  string
	BaseURL      string
	Timeout      time.Duration
}

// Validate checks that the reseller credential is present. Called per request
// rather than at startup: a missing web-service ID must surface as a 500 on
// /charge, not as a crashed process.
func (r *ResellerConfig) Validate() error {
	if r.WebServiceID == "" {
		return utils.ErrMissingWebServiceID
	}
	return nil
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it will be loaded first. It returns a populated
// Config or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if file is missing so that production
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.Port = getEnv("PORT", "8080")
	cfg.Env = getEnv("ENV", "development")

	// Reseller
	cfg.Reseller = ResellerConfig{
		WebServiceID: getEnv("CHARGE_RESELLER_WEB_ID", ""),
		RedirectURL:  getEnv("CHARGE_REDIRECT_URL", "https://domain.com/charge.php"),
		BaseURL:      getEnv("CHARGE_RESELLER_BASE_URL", "https://chr724.ir"),
	}

	var err error
	if cfg.Reseller.Timeout, err = parseDurationEnv("CHARGE_RESELLER_TIMEOUT", "10s"); err != nil {
		return nil, fmt.Errorf("invalid CHARGE_RESELLER_TIMEOUT: %w", err)
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// parseDurationEnv reads an environment variable and parses it as time.Duration.
// If the variable is empty, it falls back to the provided default value.
func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be > 0")
	}
	return d, nil
}
