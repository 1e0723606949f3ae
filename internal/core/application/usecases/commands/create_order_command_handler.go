package commands

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Opens an empty order for a customer, persists it transactionally and
// publishes the buffered domain events after a successful commit.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, eventBus, logger)
//	cmd, _ := NewCreateOrderCommand("customer-001")
//
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// orderID is "ORDER-<uuid>", order is persisted and empty
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	eventBus   ports.EventBus
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation
// operations. Requires an OrderUoWFactory for transactional persistence and
// an EventBus for post-commit event publication.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory, eventBus ports.EventBus, logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		eventBus:   eventBus,
		logger:     logger,
	}
}

// Handle processes the order creation command and returns the generated
// order id. Events are published only after the transaction commits; a
// publish failure is logged but never fails the already-persisted creation.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	newOrder, err := order.NewOrder(kernel.NewOrderID(), cmd.CustomerID())
	if err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Save(ctx, newOrder); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	events := newOrder.PullDomainEvents()
	if err = h.eventBus.PublishMany(ctx, events); err != nil {
		h.logger.ErrorContext(ctx, "publish order events",
			slog.String("order_id", newOrder.ID().String()),
			slog.Any("error", err))
	}

	return newOrder.ID().String(), nil
}
