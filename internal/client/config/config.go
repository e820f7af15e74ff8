package config

import (
	"os"
)

// Config holds runtime settings for the gophauth CLI.
//
// Fields:
//   - ServerEndpoint: base URL of the remote auth API (scheme://host:port).
//   - DBPath: SQLite file holding local preferences (remembered email).
//   - LogLevel: slog level name for diagnostics written to stderr.
//   - Google*/GitHub*: OAuth client id and callback URL per provider. Empty
//     values disable that provider's link.
type Config struct {
	ServerEndpoint string
	DBPath         string
	LogLevel       string

	GoogleClientID    string
	GoogleRedirectURL string
	GitHubClientID    string
	GitHubRedirectURL string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpoint = "http://localhost:8000"
	c.DBPath = "gophauth.db"
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	args := os.Args[1:]
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
