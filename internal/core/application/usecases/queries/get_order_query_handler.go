package queries

import (
	"context"
	"errors"

	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// GetOrderQueryHandler projects a single order into its detail view.
// A missing order yields a nil response with a nil error; the transport
// layer turns that into its own not-found signal.
type GetOrderQueryHandler struct {
	uowFactory OrderUoWFactory
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(uowFactory OrderUoWFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{uowFactory: uowFactory}
}

// Handle loads the order inside a read scope and computes per-line
// subtotals and the order total. ItemsCount is the number of lines.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	items := aggregate.Items()
	resp := GetOrderQueryResponse{
		OrderID:     aggregate.ID().String(),
		CustomerID:  aggregate.CustomerID(),
		Items:       make([]GetOrderItemResponse, 0, len(items)),
		TotalAmount: decimal.Zero,
		ItemsCount:  len(items),
	}

	for _, item := range items {
		subtotal := item.Subtotal()
		resp.Items = append(resp.Items, GetOrderItemResponse{
			SKU:      item.SKU().Code(),
			Quantity: item.Quantity().Value(),
			Price:    item.Price().Amount(),
			Subtotal: subtotal,
		})
		resp.TotalAmount = resp.TotalAmount.Add(subtotal)
	}

	return &resp, nil
}
