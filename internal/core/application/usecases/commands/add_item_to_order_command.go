package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrAddItemToOrderCommandIsNotConstructed = errors.New(
	"AddItemToOrderCommand must be created via NewAddItemToOrderCommand constructor",
)

// AddItemToOrderCommand represents a request to add a quantity of a product
// to an existing order. Raw request values are converted to value objects at
// construction time, so an invalid command can never reach a handler.
type AddItemToOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.OrderID
	sku      kernel.SKU
	quantity kernel.Quantity

	guard guard.ConstructorGuard
}

// NewAddItemToOrderCommand creates a command to add items to an order.
// The raw order id, SKU and quantity are validated through their value
// object constructors; the first failure is returned as-is.
func NewAddItemToOrderCommand(orderID, sku string, quantity int) (AddItemToOrderCommand, error) {
	id, err := kernel.OrderIDFromString(orderID)
	if err != nil {
		return AddItemToOrderCommand{}, err
	}

	skuVO, err := kernel.NewSKU(sku)
	if err != nil {
		return AddItemToOrderCommand{}, err
	}

	quantityVO, err := kernel.NewQuantity(quantity)
	if err != nil {
		return AddItemToOrderCommand{}, err
	}

	return AddItemToOrderCommand{
		orderID:  id,
		sku:      skuVO,
		quantity: quantityVO,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemToOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddItemToOrderCommandIsNotConstructed)
}

// OrderID returns the target order id.
func (c AddItemToOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// SKU returns the product SKU to add.
func (c AddItemToOrderCommand) SKU() kernel.SKU {
	return c.sku
}

// Quantity returns how many units to add.
func (c AddItemToOrderCommand) Quantity() kernel.Quantity {
	return c.quantity
}
