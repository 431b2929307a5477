// Package places wraps the Google Places text search and details endpoints.
package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/prperemyshlev/localmaps-api/internal/domain"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	StatusOK          = "OK"
	StatusZeroResults = "ZERO_RESULTS"

	maxBodySize = 10 << 20
)

// ErrFetch wraps transport failures: timeouts, network errors and non-2xx responses.
var ErrFetch = errors.New("failed to fetch from places API")

// StatusError is returned when the provider answers with a status other
// than OK or ZERO_RESULTS.
type StatusError struct {
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("Google Maps API error: %s (%s)", e.Status, e.Message)
	}
	return fmt.Sprintf("Google Maps API error: %s", e.Status)
}

type Config struct {
	APIKey        string
	TextSearchURL string
	DetailsURL    string
	Radius        int
	Timeout       time.Duration
	// HTTPClient overrides the instrumented default client
	HTTPClient *http.Client
}

// Client talks to the Places web service
type Client struct {
	httpClient    *http.Client
	apiKey        string
	textSearchURL string
	detailsURL    string
	radius        int
	timeout       time.Duration
}

func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}

	return &Client{
		httpClient:    httpClient,
		apiKey:        cfg.APIKey,
		textSearchURL: cfg.TextSearchURL,
		detailsURL:    cfg.DetailsURL,
		radius:        cfg.Radius,
		timeout:       cfg.Timeout,
	}
}

type textSearchResponse struct {
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message"`
	Results      []domain.Place `json:"results"`
}

// SearchPlaces runs a text search for query around (lat, lng). ZERO_RESULTS is
// not an error and yields an empty slice.
func (c *Client) SearchPlaces(ctx context.Context, query string, lat, lng float64) ([]domain.Place, error) {
	params := url.Values{}
	params.Set("query", fmt.Sprintf("%s near %s,%s", query, formatCoord(lat), formatCoord(lng)))
	params.Set("radius", strconv.Itoa(c.radius))
	params.Set("key", c.apiKey)

	body, err := c.get(ctx, c.textSearchURL, params)
	if err != nil {
		return nil, err
	}

	var resp textSearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: invalid response body: %v", ErrFetch, err)
	}

	switch resp.Status {
	case StatusOK, StatusZeroResults:
	default:
		return nil, &StatusError{Status: resp.Status, Message: resp.ErrorMessage}
	}

	if resp.Results == nil {
		return []domain.Place{}, nil
	}
	return resp.Results, nil
}

// GetPlaceDetails returns the provider's details payload untouched
func (c *Client) GetPlaceDetails(ctx context.Context, placeID string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("key", c.apiKey)

	body, err := c.get(ctx, c.detailsURL, params)
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: details response is not valid JSON", ErrFetch)
	}
	return json.RawMessage(body), nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error carries the full URL including the API key
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read body: %v", ErrFetch, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetch, resp.StatusCode)
	}

	return body, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
