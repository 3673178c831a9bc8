package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	catalogquery "github.com/freshfarm/storefront/internal/catalog/usecase/query"
	"github.com/freshfarm/storefront/internal/checkout/domain"
	"github.com/freshfarm/storefront/internal/session"
	"github.com/freshfarm/storefront/pkg/logger"
)

// CheckoutHandler handles HTTP requests for the checkout flow
type CheckoutHandler struct {
	sessions *session.Manager
	catalog  catalogquery.SnapshotProvider

	requestCounter  *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
	ordersConfirmed *prometheus.CounterVec
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(sessions *session.Manager, catalog catalogquery.SnapshotProvider) *CheckoutHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_checkout_requests_total",
			Help: "Total number of requests to checkout endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_checkout_request_duration_seconds",
			Help:    "Duration of checkout requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	ordersConfirmed := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_orders_confirmed_total",
			Help: "Total number of confirmed orders",
		},
		[]string{"payment_method"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(ordersConfirmed)

	return &CheckoutHandler{
		sessions:        sessions,
		catalog:         catalog,
		requestCounter:  requestCounter,
		requestLatency:  requestLatency,
		ordersConfirmed: ordersConfirmed,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (h *CheckoutHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

func (h *CheckoutHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/checkout", h.metricsMiddleware("/api/checkout", h.Confirm)).Methods("POST")
	router.HandleFunc("/api/checkout/state", h.metricsMiddleware("/api/checkout/state", h.GetState)).Methods("GET")
	router.HandleFunc("/api/checkout/payment/redirect", h.metricsMiddleware("/api/checkout/payment/redirect", h.PaymentRedirect)).Methods("POST")
	router.HandleFunc("/api/checkout/payment/close", h.metricsMiddleware("/api/checkout/payment/close", h.PaymentClose)).Methods("POST")
}

// Confirm handles POST /api/checkout. The body carries the customer form
// and payment method ("Online" or "COD").
func (h *CheckoutHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	s := session.FromRequest(h.sessions, w, r)

	var req struct {
		domain.CustomerForm
		PaymentMethod string `json:"paymentMethod"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	result, err := s.Checkout.Confirm(r.Context(), req.CustomerForm, req.PaymentMethod, h.catalog.Snapshot())
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, domain.ErrValidation) {
			status = http.StatusBadRequest
		}
		logger.Error(r.Context()).Err(err).Msg("Checkout failed")
		respondJSON(w, status, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	if result.State == domain.StateConfirmed {
		h.ordersConfirmed.WithLabelValues(req.PaymentMethod).Inc()
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    result,
	})
}

// GetState handles GET /api/checkout/state
func (h *CheckoutHandler) GetState(w http.ResponseWriter, r *http.Request) {
	s := session.FromRequest(h.sessions, w, r)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]string{
			"state": s.Checkout.State(),
		},
	})
}

// PaymentRedirect handles POST /api/checkout/payment/redirect. The client
// reports each URL the embedded payment surface navigates to.
func (h *CheckoutHandler) PaymentRedirect(w http.ResponseWriter, r *http.Request) {
	s := session.FromRequest(h.sessions, w, r)

	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	before := s.Checkout.State()
	state := s.Checkout.HandleRedirect(r.Context(), req.URL)
	if before != domain.StateConfirmed && state == domain.StateConfirmed {
		h.ordersConfirmed.WithLabelValues(domain.PaymentMethodOnline).Inc()
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]string{
			"state": state,
		},
	})
}

// PaymentClose handles POST /api/checkout/payment/close, the payment
// surface being dismissed without a redirect token.
func (h *CheckoutHandler) PaymentClose(w http.ResponseWriter, r *http.Request) {
	s := session.FromRequest(h.sessions, w, r)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]string{
			"state": s.Checkout.Close(),
		},
	})
}

func respondJSON(w http.ResponseWriter, status int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}
