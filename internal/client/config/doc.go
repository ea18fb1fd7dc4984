// Package config loads runtime configuration for the marketdesk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables (a local .env file is loaded first).
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-b string   buyer store path
//	-s string   seller store path
//	-d string   session database path
//	-t int      session lifetime (hours)
//
// # JSON schema
//
// session_ttl uses timex.Duration, so it can be either a string like
// "24h" or integer nanoseconds:
//
//	{
//	  "buyer_store_path": "data/buyers.csv",
//	  "seller_store_path": "data/sellers.csv",
//	  "session_db_path": "data/state.db",
//	  "session_secret": "change-me",
//	  "session_ttl": "24h"
//	}
package config
