package command

import (
	"fmt"

	"github.com/freshfarm/storefront/internal/cart/domain"
)

// RemoveItemCommand represents the command to remove one unit of a product
type RemoveItemCommand struct {
	ProductID string
}

// RemoveItemHandler handles remove item command
type RemoveItemHandler struct {
	cart *domain.Store
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(cart *domain.Store) *RemoveItemHandler {
	return &RemoveItemHandler{cart: cart}
}

// Handle executes the remove item command. Unknown products are a no-op.
func (h *RemoveItemHandler) Handle(cmd RemoveItemCommand) error {
	if cmd.ProductID == "" {
		return fmt.Errorf("product id is required")
	}

	h.cart.RemoveOne(cmd.ProductID)
	return nil
}
