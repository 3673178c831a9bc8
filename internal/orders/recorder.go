package orders

import (
	"context"

	checkoutdomain "github.com/freshfarm/storefront/internal/checkout/domain"
	"github.com/freshfarm/storefront/internal/orders/domain"
	"github.com/freshfarm/storefront/internal/orders/usecase/command"
	"github.com/freshfarm/storefront/kafka"
	"github.com/freshfarm/storefront/pkg/logger"
)

// EventPublisher publishes order confirmed events
type EventPublisher interface {
	PublishOrderConfirmed(ctx context.Context, event kafka.OrderConfirmedEvent) error
}

// Recorder journals confirmed checkouts and publishes their events.
// Failures are logged and swallowed: recording never affects the checkout
// outcome the customer sees.
type Recorder struct {
	record    *command.RecordOrderHandler
	publisher EventPublisher
}

// NewRecorder creates a recorder. publisher may be nil when no broker is
// configured.
func NewRecorder(repo domain.OrderRepository, publisher EventPublisher) *Recorder {
	return &Recorder{
		record:    command.NewRecordOrderHandler(repo),
		publisher: publisher,
	}
}

// RecordConfirmed journals the order and emits its event.
func (r *Recorder) RecordConfirmed(ctx context.Context, order checkoutdomain.OrderRequest) {
	items := make([]domain.OrderItem, 0, len(order.MenuItems))
	for _, line := range order.MenuItems {
		items = append(items, domain.OrderItem{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
		})
	}

	recorded, err := r.record.Handle(command.RecordOrderCommand{
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerNumber,
		TableID:       order.Table,
		Items:         items,
		TotalPrice:    order.TotalPrice,
		PaymentMethod: order.PaymentMethod,
		PaymentStatus: order.PaymentStatus,
	})
	if err != nil {
		logger.Error(ctx).Err(err).Msg("Failed to journal confirmed order")
		return
	}

	if r.publisher == nil {
		return
	}

	event := kafka.OrderConfirmedEvent{
		OrderID:       recorded.OrderID,
		CustomerName:  recorded.CustomerName,
		TableID:       recorded.TableID,
		TotalPrice:    recorded.TotalPrice,
		PaymentMethod: recorded.PaymentMethod,
		PaymentStatus: recorded.PaymentStatus,
	}
	if err := r.publisher.PublishOrderConfirmed(ctx, event); err != nil {
		logger.Error(ctx).Err(err).Str("order_id", recorded.OrderID).Msg("Failed to publish order confirmed event")
	}
}
