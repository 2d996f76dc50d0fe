package service

import (
	"context"
	"time"
)

// Order event types.
const (
	OrderEventPlaced        = "order.placed"
	OrderEventStatusChanged = "order.status_changed"
)

// OrderEvent describes a change in the order history
type OrderEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	Type          string    `json:"type"`
	OrderID       int64     `json:"order_id"`
	UserID        int64     `json:"user_id"`
	Status        string    `json:"status"`
	Total         float64   `json:"total"`
	PaymentMethod string    `json:"payment_method"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing order events to a message broker
type EventPublisher interface {
	// PublishOrderEvent publishes a single order event
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
