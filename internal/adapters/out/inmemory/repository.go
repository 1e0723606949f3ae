// Package inmemory provides map-backed implementations of the persistence
// ports. It is wired when STORAGE=memory and in tests that do not need a
// database.
package inmemory

import (
	"context"
	"sync"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// OrderRepository stores order aggregates in a mutex-guarded map keyed by
// order id. Aggregates are stored by reference; callers own them for the
// duration of their scope.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*order.Order
}

// NewOrderRepository creates an empty in-memory order repository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: make(map[string]*order.Order),
	}
}

// Save upserts the aggregate under its id.
func (r *OrderRepository) Save(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[aggregate.ID().String()] = aggregate
	return nil
}

// Get retrieves an order by id.
func (r *OrderRepository) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	aggregate, ok := r.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return aggregate, nil
}

// Delete removes an order.
func (r *OrderRepository) Delete(_ context.Context, id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id.String()]; !ok {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	delete(r.orders, id.String())
	return nil
}

// Exists reports whether an order with the id is stored.
func (r *OrderRepository) Exists(_ context.Context, id kernel.OrderID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.orders[id.String()]
	return ok, nil
}

// GetAll retrieves every stored order in unspecified iteration order;
// read-side handlers sort for themselves.
func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*order.Order, 0, len(r.orders))
	for _, aggregate := range r.orders {
		all = append(all, aggregate)
	}
	return all, nil
}
