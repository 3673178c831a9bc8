package command

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/freshfarm/storefront/internal/orders/domain"
)

// RecordOrderCommand represents the command to journal a confirmed order
type RecordOrderCommand struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	TableID       string
	Items         []domain.OrderItem
	TotalPrice    float64
	PaymentMethod string
	PaymentStatus string
}

// RecordOrderHandler handles record order command
type RecordOrderHandler struct {
	repo domain.OrderRepository
}

// NewRecordOrderHandler creates a new record order handler
func NewRecordOrderHandler(repo domain.OrderRepository) *RecordOrderHandler {
	return &RecordOrderHandler{repo: repo}
}

// Handle executes the record order command
func (h *RecordOrderHandler) Handle(cmd RecordOrderCommand) (*domain.Order, error) {
	if cmd.CustomerName == "" {
		return nil, fmt.Errorf("customer name is required")
	}
	if cmd.CustomerPhone == "" {
		return nil, fmt.Errorf("customer phone is required")
	}

	order := &domain.Order{
		OrderID:       fmt.Sprintf("ORD-%s", uuid.New().String()[:8]),
		CustomerName:  cmd.CustomerName,
		CustomerEmail: cmd.CustomerEmail,
		CustomerPhone: cmd.CustomerPhone,
		TableID:       cmd.TableID,
		Items:         cmd.Items,
		TotalPrice:    cmd.TotalPrice,
		PaymentMethod: cmd.PaymentMethod,
		PaymentStatus: cmd.PaymentStatus,
	}

	if err := h.repo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to record order: %w", err)
	}

	return order, nil
}
