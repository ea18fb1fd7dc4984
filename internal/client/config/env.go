package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file
// in the working directory, if present, is loaded first; godotenv does not
// override variables already set in the real environment.
//
// Recognized variables: BUYER_STORE_PATH, SELLER_STORE_PATH,
// SESSION_DB_PATH, SESSION_SECRET, SESSION_TTL (a time.ParseDuration
// string, e.g. "24h"; unparsable values are ignored).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("BUYER_STORE_PATH"); v != "" {
		cfg.BuyerStorePath = v
	}
	if v := os.Getenv("SELLER_STORE_PATH"); v != "" {
		cfg.SellerStorePath = v
	}
	if v := os.Getenv("SESSION_DB_PATH"); v != "" {
		cfg.SessionDBPath = v
	}
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		cfg.SessionSecret = v
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if ttl, err := time.ParseDuration(v); err == nil {
			cfg.SessionTTL = ttl
		}
	}
}
