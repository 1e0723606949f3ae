package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request/use case,
// ensuring isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents one transactional scope. It exposes a repository
// bound to the scope's transaction and guarantees commit-or-rollback
// semantics around a use case's mutations.
//
// Lifecycle discipline every handler follows:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil { ... }
//	defer func() { _ = uow.Rollback(ctx) }()
//	repo := uow.OrderRepository()
//	// ... load, mutate, save ...
//	if err := uow.Commit(ctx); err != nil { ... }
//
// Commit and Rollback both release the held transaction, so the deferred
// Rollback after a successful Commit is a reported-but-ignored no-op and a
// finished scope can never be reused.
type UnitOfWork interface {
	// Begin acquires the underlying transactional resource.
	Begin(ctx context.Context) error

	// Commit finalizes the scope's changes and releases the transaction.
	Commit(ctx context.Context) error

	// Rollback discards the scope's changes and releases the transaction.
	Rollback(ctx context.Context) error

	// OrderRepository returns a repository bound to the current transaction.
	OrderRepository() OrderRepository
}
