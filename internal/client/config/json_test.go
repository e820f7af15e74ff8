package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJSON(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"server_endpoint":       "https://auth.example",
		"log_level":             "debug",
		"github_oauth_redirect": "https://auth.example/api/sessions/oauth/github",
	})

	t.Run("loads from flag", func(t *testing.T) {
		cfg := &Config{DBPath: "keep.db"}
		require.NoError(t, parseJSON(cfg, []string{"-config", path}))

		assert.Equal(t, "https://auth.example", cfg.ServerEndpoint)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "https://auth.example/api/sessions/oauth/github", cfg.GitHubRedirectURL)
		assert.Equal(t, "keep.db", cfg.DBPath, "empty JSON fields must not erase values")
	})

	t.Run("no flag leaves config untouched", func(t *testing.T) {
		cfg := &Config{ServerEndpoint: "http://defaults:1234"}
		require.NoError(t, parseJSON(cfg, []string{"-a", "x"}))
		assert.Equal(t, "http://defaults:1234", cfg.ServerEndpoint)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		err := parseJSON(&Config{}, []string{"-c", bad})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})
}
