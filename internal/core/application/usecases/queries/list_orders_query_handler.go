package queries

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
)

// ListOrdersQueryHandler projects all persisted orders into summary rows.
// Results are sorted lexicographically by order id for deterministic output.
type ListOrdersQueryHandler struct {
	uowFactory OrderUoWFactory
}

// NewListOrdersQueryHandler creates a handler for the order listing.
func NewListOrdersQueryHandler(uowFactory OrderUoWFactory) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{uowFactory: uowFactory}
}

// Handle loads every order inside a read scope and computes, per order, the
// total amount (sum of line subtotals) and the summed quantity across lines.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregates, err := uow.OrderRepository().GetAll(ctx)
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	summaries := make([]OrderSummaryResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		summary := OrderSummaryResponse{
			OrderID:     aggregate.ID().String(),
			CustomerID:  aggregate.CustomerID(),
			TotalAmount: decimal.Zero,
		}

		for _, item := range aggregate.Items() {
			summary.ItemsCount += item.Quantity().Value()
			summary.TotalAmount = summary.TotalAmount.Add(item.Subtotal())
		}

		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].OrderID < summaries[j].OrderID
	})

	return ListOrdersQueryResponse{
		Orders:      summaries,
		TotalOrders: len(summaries),
	}, nil
}
