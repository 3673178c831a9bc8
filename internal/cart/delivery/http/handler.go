package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/freshfarm/storefront/internal/cart/usecase/command"
	"github.com/freshfarm/storefront/internal/cart/usecase/query"
	catalogquery "github.com/freshfarm/storefront/internal/catalog/usecase/query"
	"github.com/freshfarm/storefront/internal/pricing"
	"github.com/freshfarm/storefront/internal/session"
	"github.com/freshfarm/storefront/pkg/logger"
)

// CartHandler handles HTTP requests for the session cart
type CartHandler struct {
	sessions *session.Manager
	catalog  catalogquery.SnapshotProvider
	engine   *pricing.Engine

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewCartHandler creates a new cart handler
func NewCartHandler(sessions *session.Manager, catalog catalogquery.SnapshotProvider, engine *pricing.Engine) *CartHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cart_requests_total",
			Help: "Total number of requests to cart endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_cart_request_duration_seconds",
			Help:    "Duration of cart requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &CartHandler{
		sessions:       sessions,
		catalog:        catalog,
		engine:         engine,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
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

func (h *CartHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", h.GetCart)).Methods("GET")
	router.HandleFunc("/api/cart/items", h.metricsMiddleware("/api/cart/items", h.AddItem)).Methods("POST")
	router.HandleFunc("/api/cart/items/{id}", h.metricsMiddleware("/api/cart/items/{id}", h.RemoveItem)).Methods("DELETE")
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", h.ClearCart)).Methods("DELETE")
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	s := session.FromRequest(h.sessions, w, r)

	view := query.NewGetCartHandler(s.Cart, h.engine).Handle(h.catalog.Snapshot())
	view.Quote = view.Quote.Rounded()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    view,
	})
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	s := session.FromRequest(h.sessions, w, r)

	var req struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.AddItemCommand{ProductID: req.ProductID}
	if err := command.NewAddItemHandler(s.Cart).Handle(cmd); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item added to cart",
		Data: map[string]interface{}{
			"productId": req.ProductID,
			"quantity":  s.Cart.Quantity(req.ProductID),
		},
	})
}

// RemoveItem handles DELETE /api/cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	s := session.FromRequest(h.sessions, w, r)
	vars := mux.Vars(r)

	cmd := command.RemoveItemCommand{ProductID: vars["id"]}
	if err := command.NewRemoveItemHandler(s.Cart).Handle(cmd); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item removed from cart",
		Data: map[string]interface{}{
			"productId": vars["id"],
			"quantity":  s.Cart.Quantity(vars["id"]),
		},
	})
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	s := session.FromRequest(h.sessions, w, r)

	command.NewClearCartHandler(s.Cart).Handle()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Cart cleared",
	})
}

func respondJSON(w http.ResponseWriter, status int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}
