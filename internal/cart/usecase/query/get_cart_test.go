package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdomain "github.com/freshfarm/storefront/internal/cart/domain"
	catalogdomain "github.com/freshfarm/storefront/internal/catalog/domain"
	"github.com/freshfarm/storefront/internal/pricing"
)

func TestGetCartHandler_ResolvesLinesAndQuotes(t *testing.T) {
	cart := cartdomain.NewStore()
	cart.AddOne("p1")
	cart.AddOne("p1")
	cart.AddOne("p2")

	snap := catalogdomain.NewSnapshot([]catalogdomain.MenuItem{
		{ID: "p1", Name: "Paneer Tikka", Price: 250},
		{ID: "p2", Name: "Masala Dosa", Price: 120},
	}, nil)

	view := NewGetCartHandler(cart, pricing.NewDefaultEngine()).Handle(snap)

	require.Len(t, view.Items, 2)
	assert.Equal(t, CartItem{ProductID: "p1", Name: "Paneer Tikka", Price: 250, Quantity: 2}, view.Items[0])
	assert.Equal(t, CartItem{ProductID: "p2", Name: "Masala Dosa", Price: 120, Quantity: 1}, view.Items[1])

	assert.InDelta(t, 620.0, view.Quote.Subtotal, 1e-9)
	assert.InDelta(t, 0.0, view.Quote.DeliveryCharge, 1e-9)
}

func TestGetCartHandler_MissingProductListedButNotPriced(t *testing.T) {
	cart := cartdomain.NewStore()
	cart.AddOne("p1")
	cart.AddOne("gone")

	snap := catalogdomain.NewSnapshot([]catalogdomain.MenuItem{
		{ID: "p1", Name: "Paneer Tikka", Price: 250},
	}, nil)

	view := NewGetCartHandler(cart, pricing.NewDefaultEngine()).Handle(snap)

	require.Len(t, view.Items, 2)
	assert.Equal(t, CartItem{ProductID: "gone", Quantity: 1}, view.Items[1])
	assert.InDelta(t, 250.0, view.Quote.Subtotal, 1e-9)
}

func TestGetCartHandler_EmptyCart(t *testing.T) {
	view := NewGetCartHandler(cartdomain.NewStore(), pricing.NewDefaultEngine()).Handle(catalogdomain.EmptySnapshot())

	assert.Empty(t, view.Items)
	assert.InDelta(t, 0.0, view.Quote.Subtotal, 1e-9)
	assert.InDelta(t, pricing.DefaultDeliveryCharge, view.Quote.DeliveryCharge, 1e-9)
}
