// Package oauth builds the provider sign-in links shown on the login screen.
// The client never exchanges codes itself: the provider redirects to the API's
// callback, which sets the session cookie.
package oauth

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

const (
	Google = "google"
	GitHub = "github"

	googleAuthURL = "https://accounts.google.com/o/oauth2/v2/auth"
)

var (
	ErrUnknownProvider = errors.New("unknown oauth provider")
	ErrNotConfigured   = errors.New("oauth provider not configured")
)

// Provider is the client-side part of one provider's configuration.
type Provider struct {
	ClientID    string
	RedirectURL string
}

func (p Provider) configured() bool {
	return strings.TrimSpace(p.ClientID) != "" && strings.TrimSpace(p.RedirectURL) != ""
}

type Links struct {
	configs map[string]*oauth2.Config
	opts    map[string][]oauth2.AuthCodeOption
}

// NewLinks prepares links for Google and GitHub. A provider without a client
// id or callback URL stays listed but reports ErrNotConfigured.
func NewLinks(google, github Provider) *Links {
	l := &Links{
		configs: make(map[string]*oauth2.Config),
		opts:    make(map[string][]oauth2.AuthCodeOption),
	}

	if google.configured() {
		l.configs[Google] = &oauth2.Config{
			ClientID:    google.ClientID,
			RedirectURL: google.RedirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:  googleAuthURL,
				TokenURL: endpoints.Google.TokenURL,
			},
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.profile",
				"https://www.googleapis.com/auth/userinfo.email",
			},
		}
		l.opts[Google] = []oauth2.AuthCodeOption{
			oauth2.AccessTypeOffline,
			oauth2.SetAuthURLParam("prompt", "consent"),
		}
	}

	if github.configured() {
		l.configs[GitHub] = &oauth2.Config{
			ClientID:    github.ClientID,
			RedirectURL: github.RedirectURL,
			Endpoint:    endpoints.GitHub,
			Scopes:      []string{"user:email"},
		}
	}
	return l
}

// URL returns the authorization link for provider. from is the screen the
// user lands on after the API finishes the flow; it travels in state.
func (l *Links) URL(provider, from string) (string, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if provider != Google && provider != GitHub {
		return "", fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}
	cfg, ok := l.configs[provider]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotConfigured, provider)
	}
	return cfg.AuthCodeURL(from, l.opts[provider]...), nil
}

// Configured lists the providers that can produce a link.
func (l *Links) Configured() []string {
	out := make([]string, 0, len(l.configs))
	for name := range l.configs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
