package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/freshfarm/storefront/internal/catalog/usecase/query"
	"github.com/freshfarm/storefront/pkg/logger"
)

// CatalogHandler handles HTTP requests for the menu catalog
type CatalogHandler struct {
	getItemHandler    *query.GetItemHandler
	listHandler       *query.ListMenuHandler
	searchHandler     *query.SearchMenuHandler
	categoriesHandler *query.ListCategoriesHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog query.SnapshotProvider) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_catalog_requests_total",
			Help: "Total number of requests to catalog endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_catalog_request_duration_seconds",
			Help:    "Duration of catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &CatalogHandler{
		getItemHandler:    query.NewGetItemHandler(catalog),
		listHandler:       query.NewListMenuHandler(catalog),
		searchHandler:     query.NewSearchMenuHandler(catalog),
		categoriesHandler: query.NewListCategoriesHandler(catalog),
		requestCounter:    requestCounter,
		requestLatency:    requestLatency,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/menu", h.metricsMiddleware("/api/menu", h.ListMenu)).Methods("GET")
	router.HandleFunc("/api/menu/search", h.metricsMiddleware("/api/menu/search", h.SearchMenu)).Methods("GET")
	router.HandleFunc("/api/menu/{id}", h.metricsMiddleware("/api/menu/{id}", h.GetItem)).Methods("GET")
	router.HandleFunc("/api/categories", h.metricsMiddleware("/api/categories", h.ListCategories)).Methods("GET")
}

// ListMenu handles GET /api/menu
func (h *CatalogHandler) ListMenu(w http.ResponseWriter, r *http.Request) {
	availableOnly, _ := strconv.ParseBool(r.URL.Query().Get("available"))

	items := h.listHandler.Handle(query.ListMenuQuery{
		Cuisine:       r.URL.Query().Get("cuisine"),
		AvailableOnly: availableOnly,
	})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"items": items,
			"total": len(items),
		},
	})
}

// SearchMenu handles GET /api/menu/search
func (h *CatalogHandler) SearchMenu(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Query parameter q is required",
		})
		return
	}

	items := h.searchHandler.Handle(query.SearchMenuQuery{Term: term})

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"items": items,
			"total": len(items),
		},
	})
}

// GetItem handles GET /api/menu/{id}
func (h *CatalogHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	item, err := h.getItemHandler.Handle(query.GetItemQuery{ID: vars["id"]})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Menu item not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    item,
	})
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.categoriesHandler.Handle()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"categories": categories,
			"total":      len(categories),
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
