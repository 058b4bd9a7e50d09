package tomtom

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"saarthi-api/internal/models"
	"saarthi-api/internal/pacing"

	"github.com/rs/zerolog/log"
)

const (
	DefaultBaseURL = "https://api.tomtom.com"
	DefaultTimeout = 5 * time.Second

	maxErrorBody = 1024
)

// HTTPDoer is the subset of *http.Client used by Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the TomTom Search, Routing and Traffic APIs.
type Client struct {
	apiKey     string
	baseURL    string
	countrySet string
	timeout    time.Duration
	httpClient HTTPDoer
	pacer      *pacing.Pacer
}

// Option customises a Client.
type Option func(*Client)

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(baseURL, "/") }
}

// WithHTTPDoer replaces the underlying HTTP client.
func WithHTTPDoer(doer HTTPDoer) Option {
	return func(c *Client) { c.httpClient = doer }
}

// WithPacer makes every request wait on the shared pacer first.
func WithPacer(p *pacing.Pacer) Option {
	return func(c *Client) { c.pacer = p }
}

// WithTimeout bounds each request. Zero disables the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithCountrySet restricts geocoding to the given ISO country codes.
func WithCountrySet(countries string) Option {
	return func(c *Client) { c.countrySet = countries }
}

// NewClient creates a new TomTom client
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		countrySet: "IN",
		timeout:    DefaultTimeout,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get issues one paced, time-bounded GET and decodes a 2xx JSON body into out.
func (c *Client) get(ctx context.Context, op, path string, query url.Values, out interface{}) error {
	if err := c.pacer.Wait(ctx); err != nil {
		return fmt.Errorf("tomtom: %s: %w", op, err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if query == nil {
		query = url.Values{}
	}
	log.Debug().Str("op", op).Str("path", path).Str("query", query.Encode()).Msg("tomtom request")
	query.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("tomtom: %s: failed to create request: %w", op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tomtom: %s: request failed: %w: %w", op, models.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &models.ProviderError{Op: "tomtom: " + op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("tomtom: %s: %w: %v", op, models.ErrMalformedResponse, err)
	}
	return nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatPoint(lat, lon float64) string {
	return formatCoord(lat) + "," + formatCoord(lon)
}
