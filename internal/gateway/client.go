// Package gateway implements the per-domain HTTP clients for the storefront
// backends. Each client speaks conventional verbs over JSON against one
// configured base URL, attaches a bearer token when the session has one, and
// enforces a fixed overall request timeout. A 401 from any call triggers the
// configured session purge hook before the error is returned; nothing is ever
// retried.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// maxErrorBody caps how much of an error response is read for message
// extraction.
const maxErrorBody = 64 << 10

// TokenSource yields the current bearer token, or an empty string when no
// session is active.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a plain function to the TokenSource interface.
type TokenFunc func() string

// Token implements TokenSource.
func (f TokenFunc) Token() string { return f() }

// Config configures one backend gateway.
type Config struct {
	// BaseURL is the service root, e.g. https://api.example.com.
	BaseURL string
	// Timeout bounds each request end to end. Zero means 10s.
	Timeout time.Duration
	// Tokens supplies the bearer token. Nil means unauthenticated calls.
	Tokens TokenSource
	// OnUnauthorized runs once per 401 response, before ErrUnauthorized is
	// returned. Typically wired to the session purge-and-redirect handler.
	OnUnauthorized func()
}

// Client is an HTTP gateway to one backend service family.
type Client struct {
	base           *url.URL
	http           *http.Client
	tokens         TokenSource
	onUnauthorized func()
}

// New creates a gateway Client. The underlying transport is instrumented with
// OpenTelemetry HTTP tracing.
func New(cfg Config) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse base url")
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("base url %q must be absolute", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		base: base,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		tokens:         cfg.Tokens,
		onUnauthorized: cfg.OnUnauthorized,
	}, nil
}

// Get issues a GET request. Query may be nil. When out is non-nil the JSON
// response body is decoded into it.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete issues a DELETE request. When out is non-nil the response body is
// decoded into it.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.resolve(path)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return errors.Wrap(err, "build request")
	}

	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, u.Path)
	}
	defer func() { _ = resp.Body.Close() }()

	zctx.From(ctx).Debug("Gateway request",
		zap.String("method", method),
		zap.String("path", u.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
		zap.String("request_id", requestID),
	)

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return errors.Wrapf(ErrUnauthorized, "%s %s", method, u.Path)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := extractMessage(raw)
		if msg == "" {
			msg = "request failed"
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    msg,
			RequestID:  requestID,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode %s %s response", method, u.Path)
	}
	return nil
}

// resolve joins the request path onto the configured base URL, preserving any
// base path prefix.
func (c *Client) resolve(path string) *url.URL {
	u := *c.base
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.TrimPrefix(path, "/")
	return &u
}
