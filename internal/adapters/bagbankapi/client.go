// Package bagbankapi is the HTTP client for the remote BagBank REST API.
//
// Every call made on behalf of a session goes through one shared http.Client whose
// transport attaches that session's bearer token and reports 401 responses back to it.
package bagbankapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"

	apperrors "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/errors"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/ports"
)

const maxErrorBody = 64 << 10

// Config captures how to reach the BagBank API.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// ErrorMessagePaths are JMESPath expressions tried in order against error bodies.
	ErrorMessagePaths []string
	// Transport overrides the underlying round tripper (tests).
	Transport http.RoundTripper
	Logger    *slog.Logger
}

// Client talks JSON to the BagBank API.
type Client struct {
	baseURL    string
	http       *http.Client
	errorPaths []string
	logger     *slog.Logger
}

// NewClient builds an API client. The base URL must be absolute http(s).
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("bagbank api base url is required")
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse bagbank api base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("bagbank api base url must be absolute http(s): %q", base)
	}

	paths := make([]string, 0, len(cfg.ErrorMessagePaths))
	for _, p := range cfg.ErrorMessagePaths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, compileErr := jmespath.Compile(p); compileErr != nil {
			return nil, fmt.Errorf("invalid error message path %q: %w", p, compileErr)
		}
		paths = append(paths, p)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	rt := cfg.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout:   timeout,
			Transport: &bearerTransport{base: rt},
		},
		errorPaths: paths,
		logger:     logger.With("component", "bagbankapi"),
	}, nil
}

// call describes one API request.
type call struct {
	method string
	path   string
	query  url.Values
	body   any
}

// do sends c and decodes a 2xx JSON body into out (when non-nil). Non-2xx responses are
// mapped to AppErrors; a 401 has already been reported to creds by the transport.
func (c *Client) do(ctx context.Context, creds ports.Credentials, r call, out any) error {
	req, err := c.newRequest(withCredentials(ctx, creds), r)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "bagbank api request failed",
			"method", r.method, "path", r.path, "error", err)
		return apperrors.FromTransport(err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "bagbank api request",
		"method", r.method,
		"path", r.path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.errorFromResponse(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.FromTransport(fmt.Errorf("read response body: %w", err))
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = append((*raw)[:0], data...)
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "Unexpected response from the BagBank API")
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, r call) (*http.Request, error) {
	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *Client) errorFromResponse(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return apperrors.FromStatus(resp.StatusCode, c.errorMessage(data))
}

// errorMessage pulls a human readable message out of an error body using the configured
// JMESPath expressions. FastAPI style {"detail": "..."} and {"detail": [{"msg": "..."}]}
// bodies are covered by the defaults.
func (c *Client) errorMessage(body []byte) string {
	if len(bytes.TrimSpace(body)) == 0 {
		return ""
	}
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return ""
	}
	for _, expr := range c.errorPaths {
		v, err := jmespath.Search(expr, doc)
		if err != nil {
			continue
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// escapeID renders an id as a single path segment.
func escapeID(id fmt.Stringer) string {
	return url.PathEscape(id.String())
}
