package commands

import (
	"context"
	"errors"
	"log/slog"

	"orders/internal/core/ports"
	"orders/internal/pkg/errs"
)

// AddItemToOrderCommandHandler handles adding items to existing orders.
// The product catalogue is consulted before any transaction is opened; the
// unit price always comes from the pricing service, never from the request.
//
// Handle reports success as a boolean rather than an error: a missing order
// or unknown product is an expected business outcome, not a fault.
type AddItemToOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricing    ports.PricingService
	eventBus   ports.EventBus
	logger     *slog.Logger
}

// NewAddItemToOrderCommandHandler creates a handler for the add-item
// operation.
func NewAddItemToOrderCommandHandler(
	uowFactory OrderUoWFactory,
	pricing ports.PricingService,
	eventBus ports.EventBus,
	logger *slog.Logger,
) AddItemToOrderCommandHandler {
	return AddItemToOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		eventBus:   eventBus,
		logger:     logger,
	}
}

// Handle processes the add-item command.
// Returns (false, nil) when the product is not in the catalogue or the order
// does not exist. Returns an error only for infrastructure faults or domain
// invariant violations. Events buffered by the aggregate are published after
// a successful commit; publish failures are logged, not propagated.
func (h *AddItemToOrderCommandHandler) Handle(ctx context.Context, cmd AddItemToOrderCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	exists, err := h.pricing.ProductExists(ctx, cmd.SKU())
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	price, err := h.pricing.GetPrice(ctx, cmd.SKU())
	if err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return false, nil
		}
		return false, err
	}

	if err = aggregate.AddItem(cmd.SKU(), cmd.Quantity(), price); err != nil {
		return false, err
	}

	if err = orderRepo.Save(ctx, aggregate); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	events := aggregate.PullDomainEvents()
	if err = h.eventBus.PublishMany(ctx, events); err != nil {
		h.logger.ErrorContext(ctx, "publish order events",
			slog.String("order_id", aggregate.ID().String()),
			slog.Any("error", err))
	}

	return true, nil
}
