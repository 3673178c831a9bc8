package query

import (
	"fmt"

	"github.com/freshfarm/storefront/internal/catalog/domain"
)

// SnapshotProvider supplies the current catalog snapshot
type SnapshotProvider interface {
	Snapshot() *domain.Snapshot
}

// GetItemQuery represents the query to get a menu item by ID
type GetItemQuery struct {
	ID string
}

// GetItemHandler handles get menu item query
type GetItemHandler struct {
	catalog SnapshotProvider
}

// NewGetItemHandler creates a new get item handler
func NewGetItemHandler(catalog SnapshotProvider) *GetItemHandler {
	return &GetItemHandler{catalog: catalog}
}

// Handle executes the get item query
func (h *GetItemHandler) Handle(query GetItemQuery) (*domain.MenuItem, error) {
	if query.ID == "" {
		return nil, fmt.Errorf("invalid menu item id")
	}

	item, ok := h.catalog.Snapshot().Item(query.ID)
	if !ok {
		return nil, fmt.Errorf("menu item not found")
	}

	return &item, nil
}
