package queries

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full detail of a single order.
//
// Example:
//
//	query, _ := NewGetOrderQuery("ORDER-123")
//	handler := NewGetOrderQueryHandler(uowFactory)
//
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if detail == nil {
//	    // order does not exist
//	}
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order. The raw id is normalized
// through the OrderID constructor, so "123" and "ORDER-123" address the
// same order.
func NewGetOrderQuery(orderID string) (GetOrderQuery, error) {
	id, err := kernel.OrderIDFromString(orderID)
	if err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: id,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the normalized order identifier.
func (q GetOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// GetOrderItemResponse is one projected order line.
type GetOrderItemResponse struct {
	SKU      string
	Quantity int
	Price    decimal.Decimal
	Subtotal decimal.Decimal
}

// GetOrderQueryResponse is the full projection of one order.
// ItemsCount is the number of distinct lines, not the unit total.
type GetOrderQueryResponse struct {
	OrderID     string
	CustomerID  string
	Items       []GetOrderItemResponse
	TotalAmount decimal.Decimal
	ItemsCount  int
}
