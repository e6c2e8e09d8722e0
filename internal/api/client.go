// Package api is the HTTP client of the Project Ascend backend
package api

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

	"github.com/hashicorp/go-retryablehttp"
)

const userAgent = "ascend-cli"

// ErrUnauthorized is returned when the backend rejects the bearer token.
// Callers should discard the stored token and log in again.
var ErrUnauthorized = errors.New("not logged in or session expired: run 'ascend login'")

// StatusError is returned for any other unsuccessful response.
type StatusError struct {
	Method string
	Path   string
	Detail string
	Code   int
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Code, http.StatusText(e.Code))
	}

	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Code, e.Detail)
}

// Client talks to the backend REST API.
type Client struct {
	http    *retryablehttp.Client
	baseURL *url.URL
	logger  *slog.Logger
	token   string
}

// Option configures a Client.
type Option func(c *Client)

// WithToken authenticates requests with a bearer token.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithLogger sends request and retry logs to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger == nil {
			return
		}

		c.logger = logger
		c.http.Logger = logger
	}
}

// WithRetryMax sets the number of retries after a failed attempt.
func WithRetryMax(retryMax int) Option {
	return func(c *Client) {
		c.http.RetryMax = retryMax
	}
}

// WithRetryWait bounds the backoff between attempts.
func WithRetryWait(minWait, maxWait time.Duration) Option {
	return func(c *Client) {
		c.http.RetryWaitMin = minWait
		c.http.RetryWaitMax = maxWait
	}
}

// WithTimeout limits the duration of a single attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.HTTPClient.Timeout = timeout
	}
}

// New returns a client for the API at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid API URL: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid API URL %q: scheme must be http or https", baseURL)
	}

	rc := retryablehttp.NewClient()
	rc.Logger = nil
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.CheckRetry = checkRetry

	c := &Client{
		http:    rc,
		baseURL: u,
		logger:  slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SetToken replaces the bearer token used for subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// LoggedIn reports whether the client holds a token.
func (c *Client) LoggedIn() bool {
	return c.token != ""
}

type singleAttemptKey struct{}

// idempotent reports whether repeating a request with method leaves the
// server in the same state.
func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut,
		http.MethodDelete, http.MethodOptions:
		return true
	default:
		return false
	}
}

// checkRetry applies the default policy to idempotent requests only. A
// POST that failed after it was sent may already have been committed.
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if once, _ := ctx.Value(singleAttemptKey{}).(bool); once {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}

		return false, nil
	}

	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

func (c *Client) do(
	ctx context.Context,
	method, path string,
	query url.Values,
	body, out any,
) error {
	u := c.baseURL.JoinPath(path)
	u.RawQuery = query.Encode()

	var rawBody []byte

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}

		rawBody = b
	}

	if !idempotent(method) {
		ctx = context.WithValue(ctx, singleAttemptKey{}, true)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, u.String(), rawBody)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	if rawBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			Method: method,
			Path:   path,
			Code:   resp.StatusCode,
			Detail: errorDetail(resp.Body),
		}
	}

	if out == nil {
		return nil
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("%s %s: decoding response: %w", method, path, err)
	}

	return nil
}

// errorDetail extracts the "detail" message the backend puts in error
// responses.
func errorDetail(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(b) == 0 {
		return ""
	}

	var e struct {
		Detail any `json:"detail"`
	}

	if json.Unmarshal(b, &e) == nil && e.Detail != nil {
		if s, ok := e.Detail.(string); ok {
			return s
		}

		d, _ := json.Marshal(e.Detail)

		return string(d)
	}

	return string(bytes.TrimSpace(b))
}
