package queries_test

import (
	"context"
	"errors"
	"testing"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Save(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(_ context.Context, _ kernel.OrderID) error {
	return errors.New("not implemented in mock")
}

func (m *MockOrderRepository) Exists(_ context.Context, _ kernel.OrderID) (bool, error) {
	return false, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() queries.OrderUoW {
	args := m.Called()
	return args.Get(0).(queries.OrderUoW)
}

func readScope(t *testing.T, repo *MockOrderRepository) (*MockOrderUoW, *MockOrderUoWFactory) {
	t.Helper()
	uow := new(MockOrderUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Maybe()
	uow.On("Commit", mock.Anything).Return(nil).Maybe()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func mustItem(t *testing.T, sku string, quantity int, price string) order.Item {
	t.Helper()
	skuVO, err := kernel.NewSKU(sku)
	require.NoError(t, err)
	quantityVO, err := kernel.NewQuantity(quantity)
	require.NoError(t, err)
	priceVO, err := kernel.NewPrice(decimal.RequireFromString(price), "EUR")
	require.NoError(t, err)
	item, err := order.NewItem(skuVO, quantityVO, priceVO)
	require.NoError(t, err)
	return item
}

func restoredOrder(t *testing.T, orderID, customerID string, items ...order.Item) *order.Order {
	t.Helper()
	id, err := kernel.OrderIDFromString(orderID)
	require.NoError(t, err)
	aggregate, err := order.Restore(id, customerID, items)
	require.NoError(t, err)
	return aggregate
}

func TestGetOrderQueryHandler_Handle_ComputesTotals(t *testing.T) {
	ctx := t.Context()
	aggregate := restoredOrder(t, "ORDER-123", "cust-1",
		mustItem(t, "LAPTOP123", 2, "999.99"),
		mustItem(t, "MOUSE456", 1, "29.99"),
	)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	_, factory := readScope(t, repo)

	h := queries.NewGetOrderQueryHandler(factory)
	query, err := queries.NewGetOrderQuery("ORDER-123")
	require.NoError(t, err)

	resp, err := h.Handle(ctx, query)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "ORDER-123", resp.OrderID)
	assert.Equal(t, "cust-1", resp.CustomerID)
	assert.Equal(t, 2, resp.ItemsCount)
	assert.True(t, resp.TotalAmount.Equal(decimal.RequireFromString("2029.97")),
		"total is %s", resp.TotalAmount)

	require.Len(t, resp.Items, 2)
	assert.Equal(t, "LAPTOP123", resp.Items[0].SKU)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.True(t, resp.Items[0].Subtotal.Equal(decimal.RequireFromString("1999.98")))
	assert.Equal(t, "MOUSE456", resp.Items[1].SKU)
	assert.True(t, resp.Items[1].Subtotal.Equal(decimal.RequireFromString("29.99")))
}

func TestGetOrderQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	query, err := queries.NewGetOrderQuery("ORDER-404")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, query.OrderID()).
		Return(nil, errs.NewObjectNotFoundError("order_id", "ORDER-404")).Once()
	_, factory := readScope(t, repo)

	h := queries.NewGetOrderQueryHandler(factory)
	resp, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestGetOrderQueryHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	query, err := queries.NewGetOrderQuery("ORDER-123")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, query.OrderID()).
		Return(nil, errors.New("connection reset")).Once()
	_, factory := readScope(t, repo)

	h := queries.NewGetOrderQueryHandler(factory)
	_, err = h.Handle(ctx, query)
	require.Error(t, err)
}

func TestGetOrderQueryHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var query queries.GetOrderQuery // not constructed properly
	h := queries.NewGetOrderQueryHandler(new(MockOrderUoWFactory))
	_, err := h.Handle(ctx, query)
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewGetOrderQuery_NormalizesID(t *testing.T) {
	query, err := queries.NewGetOrderQuery("123")
	require.NoError(t, err)
	assert.Equal(t, "ORDER-123", query.OrderID().String())
}

func TestNewGetOrderQuery_EmptyID(t *testing.T) {
	_, err := queries.NewGetOrderQuery("   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
