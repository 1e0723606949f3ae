// Package commands contains business operations that modify system state.
// All commands follow a consistent pattern: validation, transaction
// management through a unit of work, persistence, and post-commit domain
// event publication.
package commands

import (
	"context"

	"orders/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers depend on these narrow abstractions rather than on the
// full ports.UnitOfWork so tests can substitute them piecemeal.
type (
	// TxManager handles the transaction lifecycle of a single scope.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository bound to the
	// current transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages a transactional scope over the order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates a fresh OrderUoW per command execution.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
