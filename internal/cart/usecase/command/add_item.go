package command

import (
	"fmt"

	"github.com/freshfarm/storefront/internal/cart/domain"
)

// AddItemCommand represents the command to add one unit of a product
type AddItemCommand struct {
	ProductID string
}

// AddItemHandler handles add item command
type AddItemHandler struct {
	cart *domain.Store
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(cart *domain.Store) *AddItemHandler {
	return &AddItemHandler{cart: cart}
}

// Handle executes the add item command
func (h *AddItemHandler) Handle(cmd AddItemCommand) error {
	if cmd.ProductID == "" {
		return fmt.Errorf("product id is required")
	}

	h.cart.AddOne(cmd.ProductID)
	return nil
}
