package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/freshfarm/storefront/pkg/logger"
)

const hostedCheckoutBase = "https://api.razorpay.com/v1/checkout/embedded"

// PaymentClient requests hosted-checkout payment sessions from the upstream
// payment endpoint.
type PaymentClient struct {
	baseURL      string
	keyID        string
	merchantName string
	httpClient   *http.Client
}

// NewPaymentClient creates a new payment session client
func NewPaymentClient(baseURL, keyID, merchantName string, timeout time.Duration) *PaymentClient {
	return &PaymentClient{
		baseURL:      baseURL,
		keyID:        keyID,
		merchantName: merchantName,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// CreateSession requests a payment-session URL for the amount in minor
// currency units. When the endpoint responds without a URL, the hosted
// checkout URL is built from client-known parameters instead; that fallback
// bypasses server-side order linkage and is logged when taken.
func (c *PaymentClient) CreateSession(ctx context.Context, amountMinor int64, name, phone string) (string, error) {
	body, err := json.Marshal(map[string]int64{"amount": amountMinor})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payment/create-order", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to create payment session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("payment endpoint returned status %d", resp.StatusCode)
	}

	var session struct {
		PaymentURL string `json:"paymentUrl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return "", fmt.Errorf("failed to decode payment session: %w", err)
	}

	if session.PaymentURL == "" {
		logger.Warn(ctx).
			Int64("amount_minor", amountMinor).
			Msg("Payment endpoint returned no URL, falling back to client-built checkout URL")
		return c.hostedCheckoutURL(amountMinor, name, phone), nil
	}

	return session.PaymentURL, nil
}

func (c *PaymentClient) hostedCheckoutURL(amountMinor int64, name, phone string) string {
	params := url.Values{}
	params.Set("key_id", c.keyID)
	params.Set("amount", fmt.Sprintf("%d", amountMinor))
	params.Set("currency", "INR")
	params.Set("prefill[name]", name)
	params.Set("prefill[contact]", phone)
	params.Set("notes[merchant_name]", c.merchantName)
	params.Set("redirect", "true")
	return hostedCheckoutBase + "?" + params.Encode()
}
