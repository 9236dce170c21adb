package config

import (
	"flag"
	"os"

	"github.com/tuneboxed/sessionstore/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the local state database (default from Config)
//	-r          wipe persisted accounts and session at startup
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local state database")
	fs.BoolVar(&cfg.ResetOnLaunch, "r", cfg.ResetOnLaunch, "wipe persisted accounts and session at startup")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
