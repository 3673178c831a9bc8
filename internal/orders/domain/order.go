package domain

import (
	"time"

	"gorm.io/gorm"
)

// Order is a journaled confirmed order
type Order struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	OrderID       string         `json:"order_id" gorm:"not null;uniqueIndex"`
	CustomerName  string         `json:"customer_name" gorm:"not null"`
	CustomerEmail string         `json:"customer_email"`
	CustomerPhone string         `json:"customer_phone" gorm:"not null"`
	TableID       string         `json:"table_id" gorm:"not null"`
	Items         []OrderItem    `json:"items" gorm:"foreignKey:OrderRef"`
	TotalPrice    float64        `json:"total_price" gorm:"not null"`
	PaymentMethod string         `json:"payment_method"`
	PaymentStatus string         `json:"payment_status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// OrderItem is one line of a journaled order
type OrderItem struct {
	ID         uint   `json:"-" gorm:"primaryKey"`
	OrderRef   uint   `json:"-" gorm:"index"`
	MenuItemID string `json:"menu_item_id" gorm:"not null"`
	Quantity   int    `json:"quantity" gorm:"not null"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// TableName specifies the table name
func (OrderItem) TableName() string {
	return "order_items"
}

// OrderRepository defines the contract for order journal data access
type OrderRepository interface {
	Create(order *Order) error
	FindByID(id uint) (*Order, error)
	FindByOrderID(orderID string) (*Order, error)
	FindAll(limit, offset int) ([]Order, error)
	Count() (int64, error)
}
