package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/logging"
)

const (
	pathLogin    = "/api/auth/login"
	pathRegister = "/api/auth/register"
	pathLogout   = "/api/auth/logout"
	pathMe       = "/api/users/me"

	// RequestIDHeader correlates client log lines with server logs.
	RequestIDHeader = "X-Request-ID"

	// maxErrorBody caps how much of an error response is read.
	maxErrorBody = 64 << 10
)

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	logger  logging.Logger
}

// NewHTTPClient builds a client for the API at endpoint. The returned client
// owns a fresh cookie jar, so the session starts logged out.
func NewHTTPClient(endpoint string, logger logging.Logger) (*HTTPClient, error) {
	base, err := url.Parse(strings.TrimRight(endpoint, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("parse endpoint: unsupported scheme %q", base.Scheme)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}

	return &HTTPClient{
		baseURL: base,
		http:    &http.Client{Jar: jar},
		logger:  logger,
	}, nil
}

func (c *HTTPClient) Login(ctx context.Context, in models.LoginInput) error {
	return c.do(ctx, http.MethodPost, pathLogin, in, nil)
}

func (c *HTTPClient) Register(ctx context.Context, in models.RegisterInput) error {
	return c.do(ctx, http.MethodPost, pathRegister, in, nil)
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, pathLogout, nil, nil)
}

type userEnvelope struct {
	Data struct {
		User *models.User `json:"user"`
	} `json:"data"`
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var env userEnvelope
	if err := c.do(ctx, http.MethodGet, pathMe, nil, &env); err != nil {
		return nil, err
	}
	if env.Data.User == nil {
		return nil, fmt.Errorf("%w: no user in profile response", ErrBadResponse)
	}
	return env.Data.User, nil
}

// Close drops idle connections. The cookie jar goes with the client.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in any, out any) error {
	reqID := uuid.NewString()
	log := c.logger.With("method", method, "path", path, "request_id", reqID)

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, reqID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Debug(ctx, "request started")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		log.Warn(ctx, "request failed", "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	log.Debug(ctx, "request settled", "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", ErrBadResponse, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err != nil {
		apiErr.Raw = err.Error()
		return apiErr
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		if json.Unmarshal(trimmed, &apiErr.Body) == nil {
			return apiErr
		}
		apiErr.Body = ErrorBody{}
	}
	apiErr.Raw = string(trimmed)
	return apiErr
}
