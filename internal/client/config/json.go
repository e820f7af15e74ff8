package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
)

// jsonConfig is a DTO used only for unmarshalling; empty fields leave the
// current value alone.
type jsonConfig struct {
	ServerEndpoint    string `json:"server_endpoint"`
	DBPath            string `json:"db_path"`
	LogLevel          string `json:"log_level"`
	GoogleClientID    string `json:"google_oauth_client_id"`
	GoogleRedirectURL string `json:"google_oauth_redirect"`
	GitHubClientID    string `json:"github_oauth_client_id"`
	GitHubRedirectURL string `json:"github_oauth_redirect"`
}

// parseJSON overlays cfg with values from the file named by -c/-config.
// Without the flag it does nothing.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	overlay(&cfg.ServerEndpoint, jc.ServerEndpoint)
	overlay(&cfg.DBPath, jc.DBPath)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.GoogleClientID, jc.GoogleClientID)
	overlay(&cfg.GoogleRedirectURL, jc.GoogleRedirectURL)
	overlay(&cfg.GitHubClientID, jc.GitHubClientID)
	overlay(&cfg.GitHubRedirectURL, jc.GitHubRedirectURL)
	return nil
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
