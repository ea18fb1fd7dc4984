package config

import "time"

// Config holds runtime settings for the marketdesk CLI.
//
// Fields:
//   - BuyerStorePath / SellerStorePath: locations of the per-class record stores.
//   - SessionDBPath: sqlite database holding the saved login session.
//   - SessionSecret: HMAC secret for signing session tokens.
//   - SessionTTL: how long a saved session stays resumable.
type Config struct {
	BuyerStorePath  string
	SellerStorePath string
	SessionDBPath   string
	SessionSecret   string
	SessionTTL      time.Duration
}

// LoadDefaults populates c with development defaults.
// NOTE: the secret is insecure and should be overridden outside of tests.
func (c *Config) LoadDefaults() {
	c.BuyerStorePath = "data/buyers.csv"
	c.SellerStorePath = "data/sellers.csv"
	c.SessionDBPath = "data/state.db"
	c.SessionSecret = "secretKey"
	c.SessionTTL = 24 * time.Hour
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file is given), the environment, and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
