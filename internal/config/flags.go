package config

import (
	"flag"
	"os"

	"github.com/binayakpanigrahi011-debug/Invoicor/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the SQLite database file
//	-k string   secret key for signing session tokens
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the database file")
	fs.StringVar(&cfg.TokenSecret, "k", cfg.TokenSecret, "secret key for session tokens")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
