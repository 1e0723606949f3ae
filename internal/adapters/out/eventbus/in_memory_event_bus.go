// Package eventbus provides the EventBus port implementations: an in-memory
// collector for the memory storage mode and tests, and a kafka-backed
// publisher for deployments with a broker.
package eventbus

import (
	"context"
	"sync"

	"orders/internal/core/domain/model/order"
)

// InMemoryEventBus collects published events in memory. It is a process-wide
// singleton written by concurrent use-case invocations, so access is
// mutex-guarded.
type InMemoryEventBus struct {
	mu     sync.Mutex
	events []order.DomainEvent
}

// NewInMemoryEventBus creates an empty collector bus.
func NewInMemoryEventBus() *InMemoryEventBus {
	return &InMemoryEventBus{}
}

// Publish appends a single event to the collector.
func (b *InMemoryEventBus) Publish(_ context.Context, event order.DomainEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
	return nil
}

// PublishMany appends events preserving their input order.
func (b *InMemoryEventBus) PublishMany(ctx context.Context, events []order.DomainEvent) error {
	for _, event := range events {
		if err := b.Publish(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// PublishedEvents returns a copy of everything published so far.
func (b *InMemoryEventBus) PublishedEvents() []order.DomainEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]order.DomainEvent, len(b.events))
	copy(out, b.events)
	return out
}

// Count returns the number of published events.
func (b *InMemoryEventBus) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.events)
}

// Clear drops all collected events.
func (b *InMemoryEventBus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = nil
}
