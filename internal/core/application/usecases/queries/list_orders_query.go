package queries

import (
	"errors"

	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves summaries of every order, sorted by order id.
// This is a parameterless query.
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query listing all orders.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// OrderSummaryResponse is one order's summary line.
// ItemsCount here is the sum of line quantities, unlike the detail view
// where it counts distinct lines.
type OrderSummaryResponse struct {
	OrderID     string
	CustomerID  string
	ItemsCount  int
	TotalAmount decimal.Decimal
}

// ListOrdersQueryResponse carries the sorted summaries and their count.
type ListOrdersQueryResponse struct {
	Orders      []OrderSummaryResponse
	TotalOrders int
}
