package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/freshfarm/storefront/internal/orders/domain"
	"github.com/freshfarm/storefront/internal/orders/usecase/query"
	"github.com/freshfarm/storefront/pkg/logger"
)

// OrderHandler handles HTTP requests for the order journal
type OrderHandler struct {
	getHandler  *query.GetOrderHandler
	listHandler *query.ListOrdersHandler

	repo domain.OrderRepository

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	totalOrders    prometheus.Gauge
}

// NewOrderHandler creates a new order handler (manual DI)
func NewOrderHandler(repo domain.OrderRepository) *OrderHandler {
	return newOrderHandler(
		query.NewGetOrderHandler(repo),
		query.NewListOrdersHandler(repo),
		repo,
	)
}

// NewOrderHandlerWithDI creates a new order handler using dependency injection
func NewOrderHandlerWithDI(
	getHandler *query.GetOrderHandler,
	listHandler *query.ListOrdersHandler,
	repo domain.OrderRepository,
) *OrderHandler {
	return newOrderHandler(getHandler, listHandler, repo)
}

func newOrderHandler(
	getHandler *query.GetOrderHandler,
	listHandler *query.ListOrdersHandler,
	repo domain.OrderRepository,
) *OrderHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_orders_requests_total",
			Help: "Total number of requests to order journal endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_orders_request_duration_seconds",
			Help:    "Duration of order journal requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	totalOrders := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_orders_total",
			Help: "Total number of journaled orders",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(totalOrders)

	return &OrderHandler{
		getHandler:     getHandler,
		listHandler:    listHandler,
		repo:           repo,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		totalOrders:    totalOrders,
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

func (h *OrderHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	// Staff routes (token required)
	router.HandleFunc("/api/orders", h.metricsMiddleware("/api/orders", StaffMiddleware(h.ListOrders))).Methods("GET")
	router.HandleFunc("/api/orders/{id}", h.metricsMiddleware("/api/orders/{id}", StaffMiddleware(h.GetOrder))).Methods("GET")
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	q := query.ListOrdersQuery{Limit: limit, Offset: offset}
	orders, err := h.listHandler.Handle(q)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list orders")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list orders",
		})
		return
	}

	count, _ := h.repo.Count()
	h.totalOrders.Set(float64(count))

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"orders": orders,
			"total":  count,
			"limit":  q.Limit,
			"offset": offset,
		},
	})
}

// GetOrder handles GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	order, err := h.getHandler.Handle(query.GetOrderQuery{OrderID: vars["id"]})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Order not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    order,
	})
}

func respondJSON(w http.ResponseWriter, status int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}
