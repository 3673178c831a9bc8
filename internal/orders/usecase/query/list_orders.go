package query

import (
	"fmt"

	"github.com/freshfarm/storefront/internal/orders/domain"
)

// ListOrdersQuery represents the query to list journaled orders
type ListOrdersQuery struct {
	Limit  int
	Offset int
}

// ListOrdersHandler handles list orders query
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

// Handle executes the list orders query
func (h *ListOrdersHandler) Handle(query ListOrdersQuery) ([]domain.Order, error) {
	if query.Limit <= 0 {
		query.Limit = 50
	}

	orders, err := h.repo.FindAll(query.Limit, query.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}
