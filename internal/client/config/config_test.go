package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "data/buyers.csv", c.BuyerStorePath)
	assert.Equal(t, "data/sellers.csv", c.SellerStorePath)
	assert.Equal(t, "data/state.db", c.SessionDBPath)
	assert.Equal(t, 24*time.Hour, c.SessionTTL)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "data/buyers.csv", cfg.BuyerStorePath)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}
