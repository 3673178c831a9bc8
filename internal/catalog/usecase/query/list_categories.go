package query

import (
	"github.com/freshfarm/storefront/internal/catalog/domain"
)

// ListCategoriesHandler handles list categories query
type ListCategoriesHandler struct {
	catalog SnapshotProvider
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(catalog SnapshotProvider) *ListCategoriesHandler {
	return &ListCategoriesHandler{catalog: catalog}
}

// Handle executes the list categories query
func (h *ListCategoriesHandler) Handle() []domain.Category {
	return h.catalog.Snapshot().Categories()
}
