package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshfarm/storefront/internal/checkout/domain"
)

func TestOrderClient_Submit(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewOrderClient(srv.URL, 5*time.Second)
	err := c.Submit(context.Background(), domain.OrderRequest{
		CustomerName:   "Asha",
		CustomerNumber: "9876543210",
		Table:          "4",
		MenuItems:      []domain.OrderLine{{MenuItemID: "p1", Quantity: 2}},
		TotalPrice:     731.6,
		PaymentStatus:  domain.PaymentStatusCompleted,
		PaymentMethod:  domain.PaymentMethodCOD,
	})

	require.NoError(t, err)
	assert.Equal(t, "/orders", gotPath)
	assert.Equal(t, "Asha", gotBody["customerName"])
	assert.Equal(t, "9876543210", gotBody["customerNumber"])
	assert.Equal(t, "COD", gotBody["paymentMethod"])
	assert.Equal(t, "completed", gotBody["paymentStatus"])

	items, ok := gotBody["menuItems"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)
	line := items[0].(map[string]interface{})
	assert.Equal(t, "p1", line["menuItemId"])
	assert.Equal(t, 2.0, line["quantity"])

	loc, ok := gotBody["location"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 0.0, loc["lat"])
	assert.Equal(t, 0.0, loc["lng"])
}

func TestOrderClient_SubmitNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewOrderClient(srv.URL, 5*time.Second)
	err := c.Submit(context.Background(), domain.OrderRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestPaymentClient_CreateSession(t *testing.T) {
	var gotBody map[string]int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payment/create-order", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		json.NewEncoder(w).Encode(map[string]string{"paymentUrl": "https://pay.example/session/abc"})
	}))
	defer srv.Close()

	c := NewPaymentClient(srv.URL, "rzp_test_key", "Fresh Farm", 5*time.Second)
	paymentURL, err := c.CreateSession(context.Background(), 34500, "Asha", "9876543210")

	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/session/abc", paymentURL)
	assert.Equal(t, int64(34500), gotBody["amount"])
}

func TestPaymentClient_FallsBackToHostedCheckoutURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	c := NewPaymentClient(srv.URL, "rzp_test_key", "Fresh Farm", 5*time.Second)
	paymentURL, err := c.CreateSession(context.Background(), 34500, "Asha", "9876543210")

	require.NoError(t, err)

	parsed, err := url.Parse(paymentURL)
	require.NoError(t, err)
	assert.Equal(t, "api.razorpay.com", parsed.Host)
	assert.Equal(t, "/v1/checkout/embedded", parsed.Path)

	q := parsed.Query()
	assert.Equal(t, "rzp_test_key", q.Get("key_id"))
	assert.Equal(t, "34500", q.Get("amount"))
	assert.Equal(t, "INR", q.Get("currency"))
	assert.Equal(t, "Asha", q.Get("prefill[name]"))
	assert.Equal(t, "9876543210", q.Get("prefill[contact]"))
	assert.Equal(t, "Fresh Farm", q.Get("notes[merchant_name]"))
	assert.Equal(t, "true", q.Get("redirect"))
}

func TestPaymentClient_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewPaymentClient(srv.URL, "rzp_test_key", "Fresh Farm", 5*time.Second)
	_, err := c.CreateSession(context.Background(), 34500, "Asha", "9876543210")

	require.Error(t, err)
}
