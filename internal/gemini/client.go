// Package gemini is a thin single-turn client for the Gemini generateContent API.
package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	generativelanguage "google.golang.org/api/generativelanguage/v1beta"
	"google.golang.org/api/option"
)

// EmptyReply is what GenerateText returns when the response carries no text part.
const EmptyReply = "[]"

const apiKeyHeader = "x-goog-api-key"

type Config struct {
	APIKey   string
	Endpoint string
	Model    string
	Timeout  time.Duration
	// HTTPClient overrides the instrumented default client
	HTTPClient *http.Client
}

type Client struct {
	svc     *generativelanguage.Service
	apiKey  string
	model   string
	timeout time.Duration
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}

	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	svc, err := generativelanguage.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini service: %w", err)
	}

	model := cfg.Model
	if !strings.HasPrefix(model, "models/") {
		model = "models/" + model
	}

	return &Client{
		svc:     svc,
		apiKey:  cfg.APIKey,
		model:   model,
		timeout: cfg.Timeout,
	}, nil
}

// GenerateText sends prompt as a single user turn and returns the text of the
// first part of the first candidate, or EmptyReply when that path is missing.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req := &generativelanguage.GenerateContentRequest{
		Contents: []*generativelanguage.Content{{
			Parts: []*generativelanguage.Part{{Text: prompt}},
		}},
	}

	call := c.svc.Models.GenerateContent(c.model, req).Context(ctx)
	if c.apiKey != "" {
		call.Header().Set(apiKeyHeader, c.apiKey)
	}

	resp, err := call.Do()
	if err != nil {
		return "", fmt.Errorf("gemini generateContent: %w", err)
	}

	return firstText(resp), nil
}

func firstText(resp *generativelanguage.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return EmptyReply
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return EmptyReply
	}
	part := candidate.Content.Parts[0]
	if part == nil || part.Text == "" {
		return EmptyReply
	}
	return part.Text
}
