package order

import (
	"errors"

	"orders/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Item is a single order line: a SKU with its quantity and the unit price
// snapshotted when the SKU was first added. Items are value objects owned by
// the aggregate; callers only ever see copies.
type Item struct {
	sku      kernel.SKU
	quantity kernel.Quantity
	price    kernel.Price
}

// NewItem builds a line item from validated value objects.
func NewItem(sku kernel.SKU, quantity kernel.Quantity, price kernel.Price) (Item, error) {
	if err := errors.Join(sku.Validate(), quantity.Validate(), price.Validate()); err != nil {
		return Item{}, err
	}

	return Item{
		sku:      sku,
		quantity: quantity,
		price:    price,
	}, nil
}

// SKU returns the product code of the line.
func (i Item) SKU() kernel.SKU {
	return i.sku
}

// Quantity returns the accumulated quantity of the line.
func (i Item) Quantity() kernel.Quantity {
	return i.quantity
}

// Price returns the unit price snapshotted at first add.
func (i Item) Price() kernel.Price {
	return i.price
}

// Subtotal returns price × quantity for the line.
func (i Item) Subtotal() decimal.Decimal {
	return i.price.Mul(i.quantity)
}
