package query

import (
	"github.com/freshfarm/storefront/internal/catalog/domain"
)

// ListMenuQuery represents the query to list menu items
type ListMenuQuery struct {
	Cuisine       string // Optional: filter by cuisine tag
	AvailableOnly bool
}

// ListMenuHandler handles list menu query
type ListMenuHandler struct {
	catalog SnapshotProvider
}

// NewListMenuHandler creates a new list menu handler
func NewListMenuHandler(catalog SnapshotProvider) *ListMenuHandler {
	return &ListMenuHandler{catalog: catalog}
}

// Handle executes the list menu query
func (h *ListMenuHandler) Handle(query ListMenuQuery) []domain.MenuItem {
	items := h.catalog.Snapshot().Items()

	if query.Cuisine == "" && !query.AvailableOnly {
		return items
	}

	filtered := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if query.Cuisine != "" && item.Cuisine != query.Cuisine {
			continue
		}
		if query.AvailableOnly && !item.Available {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}
