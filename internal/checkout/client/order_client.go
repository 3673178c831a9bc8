package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/freshfarm/storefront/internal/checkout/domain"
	"github.com/freshfarm/storefront/pkg/logger"
)

// OrderClient submits orders to the upstream restaurant API. Each submission
// is attempted exactly once; the caller retries by re-invoking the action.
type OrderClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewOrderClient creates a new order submission client
func NewOrderClient(baseURL string, timeout time.Duration) *OrderClient {
	return &OrderClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Submit posts the order. Any non-error 2xx response is success; no
// structured error payload is consumed.
func (c *OrderClient) Submit(ctx context.Context, order domain.OrderRequest) error {
	body, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to submit order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("order endpoint returned status %d", resp.StatusCode)
	}

	logger.Info(ctx).
		Str("customer", order.CustomerName).
		Float64("total", order.TotalPrice).
		Str("payment_method", order.PaymentMethod).
		Msg("Order submitted")

	return nil
}
