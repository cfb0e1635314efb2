package zenodo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/prereview/zsync/internal/httpclient"
	"go.uber.org/zap"
)

const (
	// BaseURL is the production Zenodo API.
	BaseURL = "https://zenodo.org/api/"

	// SandboxBaseURL is the Zenodo sandbox API, whose DOIs use 10.5072.
	SandboxBaseURL = "https://sandbox.zenodo.org/api/"

	// RateLimit keeps well inside Zenodo's per-minute quota for tokens.
	RateLimit = 2.0
)

// Client reads records from the Zenodo REST API.
type Client struct {
	http    *httpclient.Client
	baseURL *url.URL
	logger  *zap.Logger
}

// NewClient creates a Zenodo client. The API key is sent as a bearer token
// on every request.
func NewClient(baseURL, apiKey string, logger *zap.Logger, opts ...httpclient.Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing Zenodo URL: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	opts = append([]httpclient.Option{
		httpclient.WithRateLimit(RateLimit),
		httpclient.WithBearerToken(apiKey),
	}, opts...)
	return &Client{
		http:    httpclient.New(opts...),
		baseURL: u,
		logger:  logger,
	}, nil
}

// RecordURL returns the API URL of a record.
func (c *Client) RecordURL(id int) *url.URL {
	return c.baseURL.JoinPath("records", strconv.Itoa(id))
}

// Record fetches and validates one record.
func (c *Client) Record(ctx context.Context, id int) (Record, error) {
	req := httpclient.NewRequest(http.MethodGet, c.RecordURL(id))

	var r Record
	if err := c.http.GetJSON(ctx, req, &r); err != nil {
		c.logger.Warn("Unable to fetch record from Zenodo",
			append(statusFields(err), zap.Int("recordId", id), zap.Error(err))...)
		return Record{}, fmt.Errorf("%w: record %d: %w", ErrUnavailable, id, err)
	}
	if err := prepare(&r); err != nil {
		c.logger.Warn("Unable to decode record from Zenodo", zap.Int("recordId", id), zap.Error(err))
		return Record{}, fmt.Errorf("%w: record %d: %w", ErrUnavailable, id, err)
	}
	return r, nil
}

// Search runs a records query and returns the first page of hits.
// It never follows pagination links.
func (c *Client) Search(ctx context.Context, query url.Values) ([]Record, error) {
	u := c.baseURL.JoinPath("records")
	u.RawQuery = query.Encode()
	req := httpclient.NewRequest(http.MethodGet, u)

	var resp SearchResponse
	if err := c.http.GetJSON(ctx, req, &resp); err != nil {
		c.logger.Warn("Unable to search Zenodo",
			append(statusFields(err), zap.String("query", u.RawQuery), zap.Error(err))...)
		return nil, fmt.Errorf("%w: search: %w", ErrUnavailable, err)
	}
	for i := range resp.Hits.Hits {
		if err := prepare(&resp.Hits.Hits[i]); err != nil {
			c.logger.Warn("Unable to decode records from Zenodo", zap.String("query", u.RawQuery), zap.Error(err))
			return nil, fmt.Errorf("%w: search: %w", ErrUnavailable, err)
		}
	}
	return resp.Hits.Hits, nil
}

// statusFields flags the HTTP statuses that point at a problem with the
// configuration rather than with one record.
func statusFields(err error) []zap.Field {
	var fields []zap.Field
	switch {
	case httpclient.IsAuthError(err):
		fields = append(fields, zap.Bool("authError", true))
	case httpclient.IsNotFound(err):
		fields = append(fields, zap.Bool("notFound", true))
	case httpclient.IsRateLimited(err):
		fields = append(fields, zap.Bool("rateLimited", true))
	}
	return fields
}
