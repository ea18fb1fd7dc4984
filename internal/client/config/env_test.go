package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseEnv(t *testing.T) {
	t.Setenv("BUYER_STORE_PATH", "env-buyers.csv")
	t.Setenv("SESSION_SECRET", "env-secret")
	t.Setenv("SESSION_TTL", "36h")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "env-buyers.csv", cfg.BuyerStorePath)
	assert.Equal(t, "env-secret", cfg.SessionSecret)
	assert.Equal(t, 36*time.Hour, cfg.SessionTTL)
	// untouched variables keep their defaults
	assert.Equal(t, "data/sellers.csv", cfg.SellerStorePath)
}

func Test_parseEnv_IgnoresBadTTL(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}
