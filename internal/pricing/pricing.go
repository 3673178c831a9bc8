package pricing

import (
	"math"

	cartdomain "github.com/freshfarm/storefront/internal/cart/domain"
	catalogdomain "github.com/freshfarm/storefront/internal/catalog/domain"
)

// Defaults observed in the storefront: 18% GST, flat 50 delivery charge,
// waived when the subtotal is strictly greater than 500.
const (
	DefaultTaxRate          = 0.18
	DefaultDeliveryCharge   = 50
	DefaultFreeDeliveryOver = 500
)

// Quote is the price breakdown for a cart. Values carry full float64
// precision; rounding happens only at presentation time.
type Quote struct {
	Subtotal       float64 `json:"subtotal"`
	Tax            float64 `json:"tax"`
	DeliveryCharge float64 `json:"deliveryCharge"`
	Total          float64 `json:"total"`
}

// Rounded returns the quote with every amount rounded to two decimals, for
// display only.
func (q Quote) Rounded() Quote {
	return Quote{
		Subtotal:       round2(q.Subtotal),
		Tax:            round2(q.Tax),
		DeliveryCharge: round2(q.DeliveryCharge),
		Total:          round2(q.Total),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Engine computes price quotes. It holds no state beyond its rates, so
// quoting is a pure function of cart lines and catalog snapshot.
type Engine struct {
	taxRate          float64
	deliveryCharge   float64
	freeDeliveryOver float64
}

// NewEngine creates a pricing engine with the given rates.
func NewEngine(taxRate, deliveryCharge, freeDeliveryOver float64) *Engine {
	return &Engine{
		taxRate:          taxRate,
		deliveryCharge:   deliveryCharge,
		freeDeliveryOver: freeDeliveryOver,
	}
}

// NewDefaultEngine creates a pricing engine with the observed rates.
func NewDefaultEngine() *Engine {
	return NewEngine(DefaultTaxRate, DefaultDeliveryCharge, DefaultFreeDeliveryOver)
}

// Quote computes the price breakdown for the cart lines against the given
// catalog snapshot. Lines whose product is missing from the snapshot are
// dropped, which can happen transiently while the catalog is loading. The
// delivery charge applies to an empty cart too; it is waived only when the
// subtotal strictly exceeds the free-delivery threshold.
func (e *Engine) Quote(lines []cartdomain.Line, snap *catalogdomain.Snapshot) Quote {
	var subtotal float64
	for _, line := range lines {
		item, ok := snap.Item(line.ProductID)
		if !ok {
			continue
		}
		subtotal += item.Price * float64(line.Quantity)
	}

	tax := subtotal * e.taxRate

	delivery := e.deliveryCharge
	if subtotal > e.freeDeliveryOver {
		delivery = 0
	}

	return Quote{
		Subtotal:       subtotal,
		Tax:            tax,
		DeliveryCharge: delivery,
		Total:          subtotal + tax + delivery,
	}
}
