package command

import (
	"github.com/freshfarm/storefront/internal/cart/domain"
)

// ClearCartHandler handles clear cart command
type ClearCartHandler struct {
	cart *domain.Store
}

// NewClearCartHandler creates a new clear cart handler
func NewClearCartHandler(cart *domain.Store) *ClearCartHandler {
	return &ClearCartHandler{cart: cart}
}

// Handle executes the clear cart command
func (h *ClearCartHandler) Handle() {
	h.cart.Clear()
}
