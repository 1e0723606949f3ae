package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWriter struct {
	written []kafka.Message
	failAll bool
}

func (w *stubWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.failAll {
		return errors.New("broker unavailable")
	}
	w.written = append(w.written, msgs...)
	return nil
}

func testBus(writer messageWriter) *KafkaEventBus {
	return &KafkaEventBus{
		writer: writer,
		logger: slog.New(slog.DiscardHandler),
	}
}

func itemAddedEvent(t *testing.T) order.ItemAdded {
	t.Helper()
	orderID, err := kernel.OrderIDFromString("ORDER-123")
	require.NoError(t, err)
	sku, err := kernel.NewSKU("LAPTOP123")
	require.NoError(t, err)
	quantity, err := kernel.NewQuantity(2)
	require.NoError(t, err)
	price, err := kernel.NewPrice(decimal.RequireFromString("999.99"), "EUR")
	require.NoError(t, err)
	return order.NewItemAdded(orderID, sku, quantity, price)
}

func TestKafkaEventBus_Publish_EnvelopeFormat(t *testing.T) {
	ctx := t.Context()
	writer := &stubWriter{}
	bus := testBus(writer)

	event := itemAddedEvent(t)
	require.NoError(t, bus.Publish(ctx, event))
	require.Len(t, writer.written, 1)

	msg := writer.written[0]
	assert.Equal(t, "ORDER-123", string(msg.Key))

	var envelope eventEnvelope
	require.NoError(t, json.Unmarshal(msg.Value, &envelope))
	assert.Equal(t, event.EventID().String(), envelope.EventID)
	assert.Equal(t, order.ItemAddedEventName, envelope.EventName)
	assert.True(t, envelope.OccurredAt.Equal(event.OccurredAt()))

	var payload itemAddedPayload
	require.NoError(t, json.Unmarshal(envelope.Payload, &payload))
	assert.Equal(t, "ORDER-123", payload.OrderID)
	assert.Equal(t, "LAPTOP123", payload.SKU)
	assert.Equal(t, 2, payload.Quantity)
	assert.Equal(t, "999.99", payload.Price)
	assert.Equal(t, "EUR", payload.Currency)
}

func TestKafkaEventBus_Publish_OrderCreatedPayload(t *testing.T) {
	ctx := t.Context()
	writer := &stubWriter{}
	bus := testBus(writer)

	orderID, err := kernel.OrderIDFromString("ORDER-123")
	require.NoError(t, err)
	require.NoError(t, bus.Publish(ctx, order.NewOrderCreated(orderID, "cust-1")))

	var envelope eventEnvelope
	require.NoError(t, json.Unmarshal(writer.written[0].Value, &envelope))
	assert.Equal(t, order.OrderCreatedEventName, envelope.EventName)

	var payload orderCreatedPayload
	require.NoError(t, json.Unmarshal(envelope.Payload, &payload))
	assert.Equal(t, "ORDER-123", payload.OrderID)
	assert.Equal(t, "cust-1", payload.CustomerID)
}

func TestKafkaEventBus_Publish_FailureBuffersMessage(t *testing.T) {
	ctx := t.Context()
	writer := &stubWriter{failAll: true}
	bus := testBus(writer)

	err := bus.Publish(ctx, itemAddedEvent(t))
	require.Error(t, err)
	assert.Equal(t, 1, bus.PendingCount())
}

func TestKafkaEventBus_PublishMany_FailureBuffersRemainder(t *testing.T) {
	ctx := t.Context()
	writer := &stubWriter{failAll: true}
	bus := testBus(writer)

	orderID, err := kernel.OrderIDFromString("ORDER-123")
	require.NoError(t, err)
	events := []order.DomainEvent{
		order.NewOrderCreated(orderID, "cust-1"),
		itemAddedEvent(t),
	}

	err = bus.PublishMany(ctx, events)
	require.Error(t, err)
	// Both the failed message and the never-attempted one are buffered,
	// in their original order.
	assert.Equal(t, 2, bus.PendingCount())
}

func TestKafkaEventBus_Redeliver_FlushesPending(t *testing.T) {
	ctx := t.Context()
	writer := &stubWriter{failAll: true}
	bus := testBus(writer)

	require.Error(t, bus.Publish(ctx, itemAddedEvent(t)))
	require.Equal(t, 1, bus.PendingCount())

	// Broker is back.
	writer.failAll = false
	require.NoError(t, bus.Redeliver(ctx))
	assert.Equal(t, 0, bus.PendingCount())
	assert.Len(t, writer.written, 1)
}

func TestKafkaEventBus_Redeliver_KeepsFailedMessages(t *testing.T) {
	ctx := t.Context()
	writer := &stubWriter{failAll: true}
	bus := testBus(writer)

	require.Error(t, bus.Publish(ctx, itemAddedEvent(t)))

	err := bus.Redeliver(ctx)
	require.Error(t, err)
	assert.Equal(t, 1, bus.PendingCount())
}

func TestKafkaEventBus_Redeliver_NoPendingIsNoop(t *testing.T) {
	ctx := t.Context()
	writer := &stubWriter{}
	bus := testBus(writer)

	require.NoError(t, bus.Redeliver(ctx))
	assert.Empty(t, writer.written)
}
