package query

import (
	"strings"

	"github.com/freshfarm/storefront/internal/catalog/domain"
)

// SearchMenuQuery represents the query to search menu items by name
type SearchMenuQuery struct {
	Term string
}

// SearchMenuHandler handles menu search query
type SearchMenuHandler struct {
	catalog SnapshotProvider
}

// NewSearchMenuHandler creates a new search menu handler
func NewSearchMenuHandler(catalog SnapshotProvider) *SearchMenuHandler {
	return &SearchMenuHandler{catalog: catalog}
}

// Handle executes the search query. An empty term matches nothing.
func (h *SearchMenuHandler) Handle(query SearchMenuQuery) []domain.MenuItem {
	term := strings.ToLower(strings.TrimSpace(query.Term))
	if term == "" {
		return nil
	}

	var matches []domain.MenuItem
	for _, item := range h.catalog.Snapshot().Items() {
		if strings.Contains(strings.ToLower(item.Name), term) {
			matches = append(matches, item)
		}
	}
	return matches
}
