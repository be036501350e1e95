package service

import (
	"context"
	"time"
)

// StockEvent is emitted after a stock-changing operation has been committed.
type StockEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	EventID      string    `json:"event_id"`
	Type         string    `json:"type"`
	StockID      string    `json:"stock_id"`
	ProductName  string    `json:"product_name"`
	Quantity     int       `json:"quantity"`
	QuantityLeft int       `json:"quantity_left"`
	RecordID     string    `json:"record_id,omitempty"`
	Actor        string    `json:"actor,omitempty"` // Email of the caller when the route was authenticated
	OccurredAt   time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishStockEvent publishes a stock event for downstream consumers
	PublishStockEvent(ctx context.Context, event *StockEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
