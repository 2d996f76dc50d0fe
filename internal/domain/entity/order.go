// Package entity contains the core business objects of the project.
package entity

import "time"

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered:
		return true
	default:
		return false
	}
}

// CanAdvanceTo reports whether next follows s in the forward-only lifecycle
// Pending -> Shipped -> Delivered. Staying in the same status is allowed.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case OrderStatusPending:
		return next == OrderStatusShipped
	case OrderStatusShipped:
		return next == OrderStatusDelivered
	default:
		return false
	}
}

// PaymentMethod is the label recorded for how an order is paid.
type PaymentMethod string

const (
	PaymentMethodCOD    PaymentMethod = "COD"
	PaymentMethodOnline PaymentMethod = "Online"
)

// String returns the string representation of the PaymentMethod.
func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid checks if the PaymentMethod is a valid value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCOD, PaymentMethodOnline:
		return true
	default:
		return false
	}
}

// Order is a placed order. Everything except Status is fixed at creation.
type Order struct {
	ID            int64         `json:"id"`
	UserID        int64         `json:"userId"`
	Items         []CartItem    `json:"items"`
	Total         float64       `json:"total"`
	Status        OrderStatus   `json:"status"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Date          time.Time     `json:"date"`
	Address       string        `json:"address"`
}

// Clone returns a deep copy so callers cannot reach stored items.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	cloned := *o
	cloned.Items = CloneItems(o.Items)

	return &cloned
}
