package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

// AppConfig holds HTTP, auth and behaviour settings
type AppConfig struct {
	ServerPort         string
	JWTSecret          string
	JWTExpirationHours int64
	// LegacyResponses keeps the legacy API's response codes and list/update behaviour
	LegacyResponses bool
}

// LoadAppConfig loads application settings from environment variables
func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		ServerPort:         "8080",
		JWTExpirationHours: 24,
		LegacyResponses:    true,
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET_KEY")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY not set in environment")
	}

	if v := os.Getenv("JWT_EXPIRATION_HOURS"); v != "" {
		hours, err := strconv.ParseInt(v, 10, 64)
		if err != nil || hours <= 0 {
			log.Printf("Invalid JWT_EXPIRATION_HOURS %q, defaulting to 24", v)
		} else {
			cfg.JWTExpirationHours = hours
		}
	}

	if v := os.Getenv("SERVER_PORT"); v != "" {
		cfg.ServerPort = v
	}

	if v := os.Getenv("LEGACY_RESPONSES"); v != "" {
		legacy, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LEGACY_RESPONSES %q: %w", v, err)
		}
		cfg.LegacyResponses = legacy
	}

	return cfg, nil
}
