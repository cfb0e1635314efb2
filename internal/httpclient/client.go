// Package httpclient wraps net/http for the JSON APIs zsync talks to.
//
// Every transport failure is reported as ErrNetwork, every non-200 answer
// as a *StatusError and every undecodable body as ErrDecode, so callers
// only need errors.Is to classify what went wrong.
package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout is the default HTTP request timeout. Zero means
	// requests wait until the server answers or the context is cancelled.
	DefaultTimeout time.Duration = 0

	// DefaultUserAgent identifies zsync to the APIs it calls.
	DefaultUserAgent = "zsync"
)

// Request is a method, URL and header set, ready to be sent.
type Request struct {
	Method string
	URL    *url.URL
	Header http.Header
}

// NewRequest creates a request with an empty header set.
func NewRequest(method string, u *url.URL) *Request {
	return &Request{
		Method: method,
		URL:    u,
		Header: make(http.Header),
	}
}

// SetHeader sets a header and returns the request for chaining.
func (r *Request) SetHeader(key, value string) *Request {
	r.Header.Set(key, value)
	return r
}

// Client sends requests, optionally rate limited and authenticated.
type Client struct {
	httpClient  *http.Client
	timeout     time.Duration
	limiter     *rate.Limiter
	bearerToken string
	userAgent   string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithBearerToken adds "Authorization: Bearer <token>" to every request.
func WithBearerToken(token string) Option {
	return func(c *Client) {
		c.bearerToken = token
	}
}

// WithRateLimit spaces requests to at most rps per second.
// A non-positive rps leaves the client unlimited.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		} else {
			c.limiter = nil
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a client.
func New(opts ...Option) *Client {
	c := &Client{
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.httpClient = &http.Client{Timeout: c.timeout}
	return c
}

// Send executes the request. Any failure to obtain a response, including
// waiting on the rate limiter, is returned wrapped in ErrNetwork.
func (c *Client) Send(ctx context.Context, r *Request) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: rate limiter: %v", ErrNetwork, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	for key, values := range r.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return resp, nil
}

// GetJSON sends the request, requires 200 OK and decodes the body into v.
func (c *Client) GetJSON(ctx context.Context, r *Request, v any) error {
	resp, err := c.Send(ctx, r)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{StatusCode: resp.StatusCode, URL: r.URL.String()}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}
