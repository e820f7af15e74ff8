package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   base URL of the auth API
//	-d string   local preferences database path
//	-l string   log level
//
// Only the flags above are passed to the FlagSet (see flagx.FilterArgs), so
// -c/-config and unrelated arguments never cause a parse error here.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("gophauth", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpoint, "a", cfg.ServerEndpoint, "base URL of the auth API")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "local preferences database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	return fs.Parse(flagx.FilterArgs(args, []string{"-a", "-d", "-l"}))
}
