package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	catalogdomain "github.com/freshfarm/storefront/internal/catalog/domain"
	catalogquery "github.com/freshfarm/storefront/internal/catalog/usecase/query"
	"github.com/freshfarm/storefront/internal/session"
	"github.com/freshfarm/storefront/pkg/logger"
)

// FavoritesHandler handles HTTP requests for session favorites
type FavoritesHandler struct {
	sessions *session.Manager
	catalog  catalogquery.SnapshotProvider

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(sessions *session.Manager, catalog catalogquery.SnapshotProvider) *FavoritesHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_favorites_requests_total",
			Help: "Total number of requests to favorites endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_favorites_request_duration_seconds",
			Help:    "Duration of favorites requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &FavoritesHandler{
		sessions:       sessions,
		catalog:        catalog,
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

func (h *FavoritesHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

func (h *FavoritesHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/favorites", h.metricsMiddleware("/api/favorites", h.ListFavorites)).Methods("GET")
	router.HandleFunc("/api/favorites/{id}/toggle", h.metricsMiddleware("/api/favorites/{id}/toggle", h.ToggleFavorite)).Methods("POST")
}

// ListFavorites handles GET /api/favorites, resolving favorited items
// against the catalog. Identifiers missing from the snapshot are returned
// as bare IDs.
func (h *FavoritesHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	s := session.FromRequest(h.sessions, w, r)
	snap := h.catalog.Snapshot()

	ids := s.Favorites.All()
	items := make([]catalogdomain.MenuItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := snap.Item(id); ok {
			items = append(items, item)
		}
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"ids":   ids,
			"items": items,
			"total": len(ids),
		},
	})
}

// ToggleFavorite handles POST /api/favorites/{id}/toggle
func (h *FavoritesHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	s := session.FromRequest(h.sessions, w, r)
	vars := mux.Vars(r)

	id := vars["id"]
	if id == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Product id is required",
		})
		return
	}

	s.Favorites.Toggle(r.Context(), id)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"productId": id,
			"favorite":  s.Favorites.IsFavorite(id),
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
