package query

import (
	cartdomain "github.com/freshfarm/storefront/internal/cart/domain"
	catalogdomain "github.com/freshfarm/storefront/internal/catalog/domain"
	"github.com/freshfarm/storefront/internal/pricing"
)

// GetCartHandler handles get cart query, joining cart lines against the
// catalog snapshot and attaching a price quote.
type GetCartHandler struct {
	cart   *cartdomain.Store
	engine *pricing.Engine
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(cart *cartdomain.Store, engine *pricing.Engine) *GetCartHandler {
	return &GetCartHandler{cart: cart, engine: engine}
}

// CartItem is a cart line resolved against the catalog
type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// CartView is the resolved cart with its quote
type CartView struct {
	Items []CartItem    `json:"items"`
	Quote pricing.Quote `json:"quote"`
}

// Handle executes the get cart query. Lines whose product is missing from
// the snapshot are listed without catalog data and excluded from pricing.
func (h *GetCartHandler) Handle(snap *catalogdomain.Snapshot) CartView {
	lines := h.cart.Lines()

	items := make([]CartItem, 0, len(lines))
	for _, line := range lines {
		item := CartItem{ProductID: line.ProductID, Quantity: line.Quantity}
		if product, ok := snap.Item(line.ProductID); ok {
			item.Name = product.Name
			item.Price = product.Price
		}
		items = append(items, item)
	}

	return CartView{
		Items: items,
		Quote: h.engine.Quote(lines, snap),
	}
}
