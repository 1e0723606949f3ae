package eventbus

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"orders/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the slice of *kafka.Writer the bus needs; tests stub it.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// eventEnvelope is the wire format of a published domain event.
type eventEnvelope struct {
	EventID    string          `json:"event_id"`
	EventName  string          `json:"event_name"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

type orderCreatedPayload struct {
	OrderID    string `json:"order_id"`
	CustomerID string `json:"customer_id"`
}

type itemAddedPayload struct {
	OrderID  string `json:"order_id"`
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	Currency string `json:"currency"`
}

// KafkaEventBus publishes domain events to a kafka topic as JSON envelopes,
// keyed by order id so one order's events stay in one partition.
//
// Publication happens after the owning transaction has committed, so a
// broker failure must not surface to the caller as a lost order: failed
// messages are buffered and retried by Redeliver, which the jobs package
// drives on a schedule.
type KafkaEventBus struct {
	writer messageWriter
	logger *slog.Logger

	mu      sync.Mutex
	pending []kafka.Message
}

// NewKafkaEventBus creates a bus publishing to the topic on the given
// brokers (comma-separated host list).
func NewKafkaEventBus(brokers, topic string, logger *slog.Logger) *KafkaEventBus {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(brokers, ",")...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}

	return &KafkaEventBus{
		writer: writer,
		logger: logger,
	}
}

// Publish emits a single event. A write failure buffers the message for
// redelivery and is still reported to the caller.
func (b *KafkaEventBus) Publish(ctx context.Context, event order.DomainEvent) error {
	msg, err := b.toMessage(event)
	if err != nil {
		return err
	}

	if err = b.writer.WriteMessages(ctx, msg); err != nil {
		b.buffer(msg)
		return err
	}
	return nil
}

// PublishMany emits events one by one, preserving the input order. The
// first failure buffers the remaining events too, keeping per-order
// ordering intact across redelivery.
func (b *KafkaEventBus) PublishMany(ctx context.Context, events []order.DomainEvent) error {
	for i, event := range events {
		if err := b.Publish(ctx, event); err != nil {
			for _, rest := range events[i+1:] {
				msg, convErr := b.toMessage(rest)
				if convErr != nil {
					return convErr
				}
				b.buffer(msg)
			}
			return err
		}
	}
	return nil
}

// Redeliver retries every buffered message. Messages that fail again stay
// buffered for the next run.
func (b *KafkaEventBus) Redeliver(ctx context.Context) error {
	b.mu.Lock()
	pending := b.pending
	b.pending = nil
	b.mu.Unlock()

	if len(pending) == 0 {
		return nil
	}

	var failed []kafka.Message
	var lastErr error
	for _, msg := range pending {
		if err := b.writer.WriteMessages(ctx, msg); err != nil {
			failed = append(failed, msg)
			lastErr = err
		}
	}

	if len(failed) > 0 {
		b.mu.Lock()
		b.pending = append(failed, b.pending...)
		b.mu.Unlock()
		b.logger.WarnContext(ctx, "event redelivery incomplete",
			slog.Int("remaining", len(failed)),
			slog.Any("error", lastErr))
		return lastErr
	}

	b.logger.InfoContext(ctx, "event redelivery complete",
		slog.Int("delivered", len(pending)))
	return nil
}

// PendingCount reports how many messages await redelivery.
func (b *KafkaEventBus) PendingCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

func (b *KafkaEventBus) buffer(msg kafka.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = append(b.pending, msg)
}

func (b *KafkaEventBus) toMessage(event order.DomainEvent) (kafka.Message, error) {
	var key string
	var payload any

	switch e := event.(type) {
	case order.OrderCreated:
		key = e.OrderID().String()
		payload = orderCreatedPayload{
			OrderID:    e.OrderID().String(),
			CustomerID: e.CustomerID(),
		}
	case order.ItemAdded:
		key = e.OrderID().String()
		payload = itemAddedPayload{
			OrderID:  e.OrderID().String(),
			SKU:      e.SKU().Code(),
			Quantity: e.Quantity().Value(),
			Price:    e.Price().Amount().StringFixed(2),
			Currency: e.Price().Currency(),
		}
	default:
		key = event.EventID().String()
		payload = struct{}{}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return kafka.Message{}, err
	}

	value, err := json.Marshal(eventEnvelope{
		EventID:    event.EventID().String(),
		EventName:  event.EventName(),
		OccurredAt: event.OccurredAt(),
		Payload:    raw,
	})
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  event.OccurredAt(),
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
		},
	}, nil
}
