package inmemory

import (
	"context"

	"orders/internal/core/ports"
)

// UnitOfWorkFactory hands out unit of work instances sharing one in-memory
// repository, mirroring how the relational factory shares one connection
// pool.
type UnitOfWorkFactory struct {
	repository *OrderRepository
}

// NewUnitOfWorkFactory creates a factory over the shared repository.
func NewUnitOfWorkFactory(repository *OrderRepository) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{repository: repository}
}

// Create produces a new UnitOfWork. In-memory scopes carry no transaction
// state, so instances are cheap.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{repository: f.repository}
}

// UnitOfWork satisfies the transactional port without real transactions:
// mutations apply immediately and rollback is a no-op. Good enough for the
// memory storage mode, where a failed use case simply leaves earlier saves
// in place.
type UnitOfWork struct {
	repository *OrderRepository
}

// Begin is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	return nil
}

// Commit is a no-op; saves already applied.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	return nil
}

// Rollback is a no-op; in-memory scopes cannot be undone.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	return nil
}

// OrderRepository returns the shared repository.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return uow.repository
}
