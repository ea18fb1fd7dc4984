package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/marketdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-b string   buyer store path
//	-s string   seller store path
//	-d string   session database path
//	-t int      session lifetime in hours
//
// The function filters os.Args to the flags it knows about, using
// flagx.FilterArgs, so it does not interfere with the -c/-config flags
// handled by the JSON loader.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-s", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BuyerStorePath, "b", cfg.BuyerStorePath, "buyer store path")
	fs.StringVar(&cfg.SellerStorePath, "s", cfg.SellerStorePath, "seller store path")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "session database path")
	sessionTTL := fs.Int("t", int(cfg.SessionTTL.Hours()), "session lifetime (in hours)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// only override the TTL when -t was actually passed, so a fractional
	// duration from JSON or the environment survives untouched
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.SessionTTL = time.Duration(*sessionTTL) * time.Hour
		}
	})
}
