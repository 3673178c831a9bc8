package query

import (
	"fmt"

	"github.com/freshfarm/storefront/internal/orders/domain"
)

// GetOrderQuery represents the query to get a journaled order
type GetOrderQuery struct {
	OrderID string
}

// GetOrderHandler handles get order query
type GetOrderHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

// Handle executes the get order query
func (h *GetOrderHandler) Handle(query GetOrderQuery) (*domain.Order, error) {
	if query.OrderID == "" {
		return nil, fmt.Errorf("order id is required")
	}

	order, err := h.repo.FindByOrderID(query.OrderID)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}

	return order, nil
}
