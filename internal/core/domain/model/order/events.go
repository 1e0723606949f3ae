package order

import (
	"time"

	"orders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// Event names as they appear on the wire.
const (
	OrderCreatedEventName = "order_created"
	ItemAddedEventName    = "item_added"
)

// DomainEvent is an immutable record of a fact that occurred inside the
// aggregate, intended for external consumers. Identifier and timestamp are
// assigned at construction and never change.
type DomainEvent interface {
	EventID() uuid.UUID
	EventName() string
	OccurredAt() time.Time
}

type event struct {
	id         uuid.UUID
	occurredAt time.Time
}

func newEvent() event {
	return event{
		id:         uuid.New(),
		occurredAt: time.Now().UTC(),
	}
}

// EventID returns the unique identifier of the event.
func (e event) EventID() uuid.UUID {
	return e.id
}

// OccurredAt returns the moment the event was recorded.
func (e event) OccurredAt() time.Time {
	return e.occurredAt
}

// OrderCreated signals that a new order was opened for a customer.
type OrderCreated struct {
	event
	orderID    kernel.OrderID
	customerID string
}

// NewOrderCreated creates an OrderCreated event.
func NewOrderCreated(orderID kernel.OrderID, customerID string) OrderCreated {
	return OrderCreated{
		event:      newEvent(),
		orderID:    orderID,
		customerID: customerID,
	}
}

// EventName implements DomainEvent.
func (e OrderCreated) EventName() string {
	return OrderCreatedEventName
}

// OrderID returns the identifier of the created order.
func (e OrderCreated) OrderID() kernel.OrderID {
	return e.orderID
}

// CustomerID returns the customer the order belongs to.
func (e OrderCreated) CustomerID() string {
	return e.customerID
}

// ItemAdded signals that a quantity of a product was added to an order.
// Quantity carries the added delta, not the resulting line total.
type ItemAdded struct {
	event
	orderID  kernel.OrderID
	sku      kernel.SKU
	quantity kernel.Quantity
	price    kernel.Price
}

// NewItemAdded creates an ItemAdded event.
func NewItemAdded(orderID kernel.OrderID, sku kernel.SKU, quantity kernel.Quantity, price kernel.Price) ItemAdded {
	return ItemAdded{
		event:    newEvent(),
		orderID:  orderID,
		sku:      sku,
		quantity: quantity,
		price:    price,
	}
}

// EventName implements DomainEvent.
func (e ItemAdded) EventName() string {
	return ItemAddedEventName
}

// OrderID returns the identifier of the mutated order.
func (e ItemAdded) OrderID() kernel.OrderID {
	return e.orderID
}

// SKU returns the product code that was added.
func (e ItemAdded) SKU() kernel.SKU {
	return e.sku
}

// Quantity returns the added quantity (the delta, not the line total).
func (e ItemAdded) Quantity() kernel.Quantity {
	return e.quantity
}

// Price returns the unit price supplied with the addition.
func (e ItemAdded) Price() kernel.Price {
	return e.price
}
