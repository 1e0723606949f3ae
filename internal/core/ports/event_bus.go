package ports

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// EventBus is the domain-event publication port. The interface is
// broker-agnostic: the in-memory collector and the kafka-backed publisher
// implement the same contract.
//
// Use cases publish strictly after their unit of work has committed.
// A publish failure must therefore never undo persistence; implementations
// are expected to log and retry on their own.
type EventBus interface {
	// Publish emits a single event.
	Publish(ctx context.Context, event order.DomainEvent) error

	// PublishMany emits events one by one, preserving the input order.
	PublishMany(ctx context.Context, events []order.DomainEvent) error
}
