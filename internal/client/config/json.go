package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/marketdesk/internal/flagx"
	"github.com/dmitrijs2005/marketdesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. SessionTTL
// uses timex.Duration so the file can specify it either as a string like
// "24h" or as integer nanoseconds.
type JsonConfig struct {
	BuyerStorePath  string         `json:"buyer_store_path"`
	SellerStorePath string         `json:"seller_store_path"`
	SessionDBPath   string         `json:"session_db_path"`
	SessionSecret   string         `json:"session_secret"`
	SessionTTL      timex.Duration `json:"session_ttl"`
}

// parseJson overlays Config with values from the JSON file given via the
// -c/-config flags. Without those flags the function is a no-op. It panics
// on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BuyerStorePath != "" {
		cfg.BuyerStorePath = jc.BuyerStorePath
	}
	if jc.SellerStorePath != "" {
		cfg.SellerStorePath = jc.SellerStorePath
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
	if jc.SessionSecret != "" {
		cfg.SessionSecret = jc.SessionSecret
	}
	if jc.SessionTTL.Duration != 0 {
		cfg.SessionTTL = jc.SessionTTL.Duration
	}
}
