package prereview

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/prereview/zsync/internal/httpclient"
	"go.uber.org/zap"
)

// BaseURL is the production PREreview site.
const BaseURL = "https://www.prereview.org/"

// Common errors returned by the PREreview client.
var (
	// ErrUnavailable wraps every failure to read from PREreview.
	ErrUnavailable = errors.New("unable to read from PREreview")

	// ErrInvalidPayload indicates a response that failed validation.
	ErrInvalidPayload = errors.New("invalid PREreview payload")

	// ErrPersonaNotFound indicates an empty persona list.
	ErrPersonaNotFound = errors.New("persona not found")
)

type fullReviewsResponse struct {
	Data []FullReview `json:"data"`
}

type personasResponse struct {
	Data []Persona `json:"data"`
}

// Client reads reviews and personas from PREreview.
type Client struct {
	http    *httpclient.Client
	baseURL *url.URL
	logger  *zap.Logger
}

// NewClient creates a PREreview client rooted at baseURL.
func NewClient(baseURL string, logger *zap.Logger, opts ...httpclient.Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing PREreview URL: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		http:    httpclient.New(opts...),
		baseURL: u,
		logger:  logger,
	}, nil
}

// FullReviewURL returns the API URL of one full review.
func (c *Client) FullReviewURL(reviewID string) *url.URL {
	return c.baseURL.JoinPath("api", "v2", "full-reviews", reviewID)
}

// FullReviews fetches every published full review, in API order.
func (c *Client) FullReviews(ctx context.Context) ([]FullReview, error) {
	u := c.baseURL.JoinPath("api", "v2", "full-reviews")
	u.RawQuery = url.Values{"is_published": {"true"}}.Encode()

	var resp fullReviewsResponse
	if err := c.http.GetJSON(ctx, httpclient.NewRequest(http.MethodGet, u), &resp); err != nil {
		c.logger.Warn("Unable to fetch full reviews from PREreview", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	for _, r := range resp.Data {
		if err := r.Validate(); err != nil {
			c.logger.Warn("Unable to decode full reviews from PREreview", zap.Error(err))
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
	}
	return resp.Data, nil
}

// Persona fetches the persona of an author.
func (c *Client) Persona(ctx context.Context, uuid string) (Persona, error) {
	u := c.baseURL.JoinPath("api", "v2", "personas", uuid)

	var resp personasResponse
	if err := c.http.GetJSON(ctx, httpclient.NewRequest(http.MethodGet, u), &resp); err != nil {
		c.logger.Warn("Unable to fetch persona from PREreview", zap.String("personaId", uuid), zap.Error(err))
		return Persona{}, fmt.Errorf("%w: persona %s: %w", ErrUnavailable, uuid, err)
	}
	if len(resp.Data) == 0 {
		c.logger.Warn("Unable to decode personas from PREreview", zap.String("personaId", uuid))
		return Persona{}, fmt.Errorf("%w: persona %s: %w", ErrUnavailable, uuid, ErrPersonaNotFound)
	}
	p := resp.Data[0]
	if err := p.Validate(); err != nil {
		c.logger.Warn("Unable to decode personas from PREreview", zap.String("personaId", uuid), zap.Error(err))
		return Persona{}, fmt.Errorf("%w: persona %s: %w", ErrUnavailable, uuid, err)
	}
	return p, nil
}
