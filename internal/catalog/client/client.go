package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/freshfarm/storefront/internal/catalog/domain"
	"github.com/freshfarm/storefront/pkg/logger"
)

// Client fetches the menu and categories from the upstream restaurant API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a catalog client for the given upstream base URL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// FetchSnapshot fetches the menu and categories and builds a snapshot.
func (c *Client) FetchSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	var items []domain.MenuItem
	if err := c.getJSON(ctx, "/menu", &items); err != nil {
		return nil, fmt.Errorf("failed to fetch menu: %w", err)
	}

	var categories []domain.Category
	if err := c.getJSON(ctx, "/category", &categories); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	logger.Info(ctx).
		Int("items", len(items)).
		Int("categories", len(categories)).
		Msg("Catalog snapshot fetched")

	return domain.NewSnapshot(items, categories), nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
