package kafka

import "time"

// OrderConfirmedEvent is emitted after every confirmed checkout
type OrderConfirmedEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	OrderID       string    `json:"order_id"`
	CustomerName  string    `json:"customer_name"`
	TableID       string    `json:"table_id"`
	TotalPrice    float64   `json:"total_price"`
	PaymentMethod string    `json:"payment_method"`
	PaymentStatus string    `json:"payment_status"`
	Timestamp     time.Time `json:"timestamp"`
}

// MenuUpdatedEvent signals that the upstream menu changed and the catalog
// snapshot should be refreshed
type MenuUpdatedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeOrderConfirmed = "order.confirmed"
	EventTypeMenuUpdated    = "menu.updated"
)

// Kafka topics
const (
	TopicOrderConfirmed = "order-confirmed"
	TopicMenuUpdated    = "menu-updated"
)
