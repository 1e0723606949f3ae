package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations (in-memory, relational) are interchangeable behind this
// interface.
type OrderRepository interface {
	// Save persists the aggregate. Save is an upsert: an existing order with
	// the same identifier is replaced, including any denormalized totals and
	// line-item projections.
	Save(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier. Absence is reported as an
	// errs.ObjectNotFoundError, which callers must treat as an expected
	// outcome, not a fault.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// Delete removes an order and its lines. Deleting an unknown identifier
	// reports errs.ObjectNotFoundError.
	Delete(ctx context.Context, id kernel.OrderID) error

	// Exists reports whether an order with the identifier is persisted.
	Exists(ctx context.Context, id kernel.OrderID) (bool, error)

	// GetAll retrieves every persisted order.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
