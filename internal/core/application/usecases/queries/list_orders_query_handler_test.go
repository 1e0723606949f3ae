package queries_test

import (
	"errors"
	"testing"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListOrdersQueryHandler_Handle_SortedSummaries(t *testing.T) {
	ctx := t.Context()

	// Saved out of order on purpose; the handler must sort by order id.
	all := []*order.Order{
		restoredOrder(t, "ORDER-003", "cust-3",
			mustItem(t, "MOUSE456", 3, "29.99")),
		restoredOrder(t, "ORDER-001", "cust-1",
			mustItem(t, "LAPTOP123", 2, "999.99"),
			mustItem(t, "MOUSE456", 1, "29.99")),
		restoredOrder(t, "ORDER-002", "cust-2"),
	}

	repo := new(MockOrderRepository)
	repo.On("GetAll", mock.Anything).Return(all, nil).Once()
	_, factory := readScope(t, repo)

	h := queries.NewListOrdersQueryHandler(factory)
	resp, err := h.Handle(ctx, queries.NewListOrdersQuery())
	require.NoError(t, err)

	assert.Equal(t, 3, resp.TotalOrders)
	require.Len(t, resp.Orders, 3)

	assert.Equal(t, "ORDER-001", resp.Orders[0].OrderID)
	assert.Equal(t, "ORDER-002", resp.Orders[1].OrderID)
	assert.Equal(t, "ORDER-003", resp.Orders[2].OrderID)

	// items_count on summaries is the summed quantity, not the line count.
	assert.Equal(t, 3, resp.Orders[0].ItemsCount)
	assert.True(t, resp.Orders[0].TotalAmount.Equal(decimal.RequireFromString("2029.97")))

	// An empty order still appears, with zeroed totals.
	assert.Equal(t, "cust-2", resp.Orders[1].CustomerID)
	assert.Equal(t, 0, resp.Orders[1].ItemsCount)
	assert.True(t, resp.Orders[1].TotalAmount.IsZero())

	assert.Equal(t, 3, resp.Orders[2].ItemsCount)
	assert.True(t, resp.Orders[2].TotalAmount.Equal(decimal.RequireFromString("89.97")))
}

func TestListOrdersQueryHandler_Handle_Empty(t *testing.T) {
	ctx := t.Context()

	repo := new(MockOrderRepository)
	repo.On("GetAll", mock.Anything).Return([]*order.Order{}, nil).Once()
	_, factory := readScope(t, repo)

	h := queries.NewListOrdersQueryHandler(factory)
	resp, err := h.Handle(ctx, queries.NewListOrdersQuery())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.TotalOrders)
	assert.Empty(t, resp.Orders)
}

func TestListOrdersQueryHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()

	repo := new(MockOrderRepository)
	repo.On("GetAll", mock.Anything).Return(nil, errors.New("connection reset")).Once()
	_, factory := readScope(t, repo)

	h := queries.NewListOrdersQueryHandler(factory)
	_, err := h.Handle(ctx, queries.NewListOrdersQuery())
	require.Error(t, err)
}

func TestListOrdersQueryHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var query queries.ListOrdersQuery // not constructed properly
	h := queries.NewListOrdersQueryHandler(new(MockOrderUoWFactory))
	_, err := h.Handle(ctx, query)
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
}
