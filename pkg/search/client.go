package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/fern/pkg/metrics"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

const (
	// DefaultTimeout is the default search request timeout
	DefaultTimeout = 10 * time.Second

	// MaxResponseSize caps a search response body (5MB)
	MaxResponseSize = 5 * 1024 * 1024
)

// ClientConfig holds search backend connection configuration.
type ClientConfig struct {
	// Endpoint is the full query URL of the hosted search index.
	Endpoint string
	// APIKey is sent as a bearer token when set.
	APIKey  string
	Timeout time.Duration
}

// Client is the HTTP search backend client.
type Client struct {
	config ClientConfig
	client *http.Client
	logger ectologger.Logger
}

// NewClient creates a search backend client.
func NewClient(cfg ClientConfig, logger ectologger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		config: cfg,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Search posts the query to the search backend and decodes the hit list.
func (c *Client) Search(ctx context.Context, query Query) (Response, error) {
	ctx, span := tracing.StartSpan(ctx, "search.Client.Search")
	defer span.End()

	start := time.Now()

	body, err := json.Marshal(query)
	if err != nil {
		return Response{}, fmt.Errorf("failed to encode search query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.SearchRequests.WithLabelValues("error").Inc()
		c.logger.WithContext(ctx).WithError(err).Error("search backend request failed")
		return Response{}, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	metrics.SearchDuration.Observe(time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		metrics.SearchRequests.WithLabelValues("error").Inc()
		return Response{}, fmt.Errorf("search backend returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		metrics.SearchRequests.WithLabelValues("error").Inc()
		return Response{}, fmt.Errorf("failed to read search response: %w", err)
	}

	var result Response
	if err := json.Unmarshal(data, &result); err != nil {
		metrics.SearchRequests.WithLabelValues("error").Inc()
		return Response{}, fmt.Errorf("failed to decode search response: %w", err)
	}

	metrics.SearchRequests.WithLabelValues("ok").Inc()
	return result, nil
}
