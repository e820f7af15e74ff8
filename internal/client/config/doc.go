// Package config loads runtime configuration for the gophauth CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables with the GOPHAUTH_ prefix.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the auth API
//	-d string   path of the local preferences database
//	-l string   log level (debug, info, warn, error)
//
// Environment
//
//	GOPHAUTH_SERVER_ENDPOINT
//	GOPHAUTH_DB_PATH
//	GOPHAUTH_LOG_LEVEL
//	GOPHAUTH_GOOGLE_OAUTH_CLIENT_ID
//	GOPHAUTH_GOOGLE_OAUTH_REDIRECT
//	GOPHAUTH_GITHUB_OAUTH_CLIENT_ID
//	GOPHAUTH_GITHUB_OAUTH_REDIRECT
//
// # JSON schema
//
//	{
//	  "server_endpoint": "http://localhost:8000",
//	  "db_path": "gophauth.db",
//	  "log_level": "warn",
//	  "google_oauth_client_id": "...",
//	  "google_oauth_redirect": "http://localhost:8000/api/sessions/oauth/google",
//	  "github_oauth_client_id": "...",
//	  "github_oauth_redirect": "http://localhost:8000/api/sessions/oauth/github"
//	}
package config
