package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/swagshop/ecommerce/internal/catalog"
)

// OrderStatus represents valid order states
type OrderStatus string

// Order statuses
const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusComplete  OrderStatus = "complete"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Domain errors
var (
	ErrEmptyOrder              = errors.New("order must contain at least one item")
	ErrMissingFirstName        = errors.New("Error: First Name is required")
	ErrMissingLastName         = errors.New("Error: Last Name is required")
	ErrMissingPostalCode       = errors.New("Error: Postal Code is required")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
)

// CustomerInfo is the shipping information collected on checkout step one
type CustomerInfo struct {
	FirstName  string
	LastName   string
	PostalCode string
}

// Validate checks that every checkout field was filled in, reporting the
// first missing field the way the checkout form displays it.
func (c CustomerInfo) Validate() error {
	if c.FirstName == "" {
		return ErrMissingFirstName
	}
	if c.LastName == "" {
		return ErrMissingLastName
	}
	if c.PostalCode == "" {
		return ErrMissingPostalCode
	}
	return nil
}

// Order represents a completed-checkout record
type Order struct {
	ID         string
	Reference  string
	Customer   CustomerInfo
	Items      []catalog.Product
	TotalCents int64
	Status     OrderStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewOrder creates a pending order from the cart contents and the customer
// information entered on checkout step one.
func NewOrder(customer CustomerInfo, cart *Cart) (*Order, error) {
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if cart.Count() == 0 {
		return nil, ErrEmptyOrder
	}

	now := time.Now()
	return &Order{
		ID:         uuid.New().String(),
		Reference:  fmt.Sprintf("ORDER-%d", now.UnixNano()),
		Customer:   customer,
		Items:      cart.Items(),
		TotalCents: cart.TotalCents(),
		Status:     OrderStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Complete marks the order as placed
func (o *Order) Complete() error {
	if o.Status != OrderStatusPending {
		return fmt.Errorf("%w: cannot complete order with status %s", ErrInvalidStatusTransition, o.Status)
	}
	o.Status = OrderStatusComplete
	o.UpdatedAt = time.Now()
	return nil
}

// Cancel marks the order as cancelled
func (o *Order) Cancel() error {
	if o.Status == OrderStatusComplete {
		return fmt.Errorf("%w: cannot cancel a completed order", ErrInvalidStatusTransition)
	}
	o.Status = OrderStatusCancelled
	o.UpdatedAt = time.Now()
	return nil
}

// IsComplete returns true if the order has been placed
func (o *Order) IsComplete() bool {
	return o.Status == OrderStatusComplete
}

// DisplayTotal returns the order total formatted for rendering
func (o *Order) DisplayTotal() string {
	return fmt.Sprintf("$%d.%02d", o.TotalCents/100, o.TotalCents%100)
}
