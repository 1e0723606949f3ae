// Package queries contains read-only operations over persisted orders.
// Queries never mutate aggregates and never publish events; they open a
// read scope through the unit of work and project aggregates into response
// structs.
package queries

import (
	"context"

	"orders/internal/core/ports"
)

// Read-side unit of work abstractions. Declared separately from the
// commands package so each side depends only on what it uses.
type (
	// TxManager handles the transaction lifecycle of a single read scope.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository bound to the
	// current scope.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages a read scope over the order store.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates a fresh OrderUoW per query execution.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
