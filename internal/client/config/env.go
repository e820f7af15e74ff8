package config

import (
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "GOPHAUTH"

// envConfig mirrors Config for envconfig. It is seeded from the current
// values, and envconfig only touches fields whose variable is set.
type envConfig struct {
	ServerEndpoint    string `envconfig:"SERVER_ENDPOINT"`
	DBPath            string `envconfig:"DB_PATH"`
	LogLevel          string `envconfig:"LOG_LEVEL"`
	GoogleClientID    string `envconfig:"GOOGLE_OAUTH_CLIENT_ID"`
	GoogleRedirectURL string `envconfig:"GOOGLE_OAUTH_REDIRECT"`
	GitHubClientID    string `envconfig:"GITHUB_OAUTH_CLIENT_ID"`
	GitHubRedirectURL string `envconfig:"GITHUB_OAUTH_REDIRECT"`
}

func parseEnv(cfg *Config) error {
	ec := envConfig(*cfg)
	if err := envconfig.Process(envPrefix, &ec); err != nil {
		return err
	}
	*cfg = Config(ec)
	return nil
}
