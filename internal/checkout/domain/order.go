package domain

import (
	"errors"
	"fmt"
)

// Checkout states
const (
	StateEditing        = "editing"
	StateValidating     = "validating"
	StateOnlinePayment  = "online_payment"
	StateOfflinePayment = "offline_payment"
	StateConfirmed      = "confirmed"
)

// Payment methods and statuses, on the wire exactly as the upstream order
// endpoint expects them.
const (
	PaymentMethodOnline = "Online"
	PaymentMethodCOD    = "COD"

	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

// Redirect tokens the hosted payment page is expected to navigate to.
// Matching is a plain substring check on client-visible URLs, not a verified
// payment confirmation.
const (
	TokenAuthorized = "authorized"
	TokenFailed     = "failed"
)

// ErrValidation marks a missing required checkout field.
var ErrValidation = errors.New("validation failed")

// OrderLine is one ordered menu item
type OrderLine struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

// Location is the customer geolocation, currently always zero
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// OrderRequest is the payload submitted to the order endpoint. It is built
// fresh per checkout attempt and discarded after submission.
type OrderRequest struct {
	CustomerName   string      `json:"customerName"`
	CustomerEmail  string      `json:"customerEmail"`
	CustomerNumber string      `json:"customerNumber"`
	Table          string      `json:"table"`
	MenuItems      []OrderLine `json:"menuItems"`
	TotalPrice     float64     `json:"totalPrice"`
	PaymentStatus  string      `json:"paymentStatus"`
	PaymentMethod  string      `json:"paymentMethod"`
	Location       Location    `json:"location"`
}

// CustomerForm carries the checkout form fields
type CustomerForm struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Table string `json:"table"`
}

// Validate checks the required fields. Email is optional.
func (f CustomerForm) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	if f.Phone == "" {
		return fmt.Errorf("%w: phone number is required", ErrValidation)
	}
	if f.Table == "" {
		return fmt.Errorf("%w: table is required", ErrValidation)
	}
	return nil
}
