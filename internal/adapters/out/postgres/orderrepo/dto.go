// Package orderrepo implements the order repository on PostgreSQL.
// An aggregate maps to one header row in "orders" plus one row per line in
// "order_items"; denormalized totals on the header keep listings cheap.
package orderrepo

import (
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is the database representation of an order header.
type OrderDTO struct {
	OrderID     string          `gorm:"column:order_id;type:varchar(64);primaryKey"`
	CustomerID  string          `gorm:"column:customer_id;type:varchar(64);index"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:numeric(10,2)"`
	Currency    string          `gorm:"column:currency;type:varchar(3)"`
	ItemsCount  int             `gorm:"column:items_count"`
	Items       []OrderItemDTO  `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one persisted order line. The autoincrement id preserves
// insertion order across a save/load round trip.
type OrderItemDTO struct {
	ID       uint            `gorm:"primaryKey;autoIncrement"`
	OrderID  string          `gorm:"column:order_id;type:varchar(64);index"`
	SKU      string          `gorm:"column:sku;type:varchar(12)"`
	Quantity int             `gorm:"column:quantity"`
	Price    decimal.Decimal `gorm:"column:price;type:numeric(10,2)"`
	Subtotal decimal.Decimal `gorm:"column:subtotal;type:numeric(10,2)"`
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

const defaultCurrency = "EUR"

// fromDomain converts an order aggregate to its database representation,
// computing the denormalized header totals from the lines.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()

	dto := OrderDTO{
		OrderID:     aggregate.ID().String(),
		CustomerID:  aggregate.CustomerID(),
		TotalAmount: decimal.Zero,
		Currency:    defaultCurrency,
		ItemsCount:  len(items),
		Items:       make([]OrderItemDTO, 0, len(items)),
	}

	for _, item := range items {
		subtotal := item.Subtotal()
		dto.Items = append(dto.Items, OrderItemDTO{
			OrderID:  dto.OrderID,
			SKU:      item.SKU().Code(),
			Quantity: item.Quantity().Value(),
			Price:    item.Price().Amount(),
			Subtotal: subtotal,
		})
		dto.TotalAmount = dto.TotalAmount.Add(subtotal)
		dto.Currency = item.Price().Currency()
	}

	return dto
}

// toDomain converts a database DTO back into an order aggregate. Lines are
// rebuilt through the value object constructors, so corrupted rows surface
// as validation errors rather than invalid aggregates.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}

	currency := dto.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, row := range dto.Items {
		sku, skuErr := kernel.NewSKU(row.SKU)
		if skuErr != nil {
			return nil, skuErr
		}

		quantity, qtyErr := kernel.NewQuantity(row.Quantity)
		if qtyErr != nil {
			return nil, qtyErr
		}

		price, priceErr := kernel.NewPrice(row.Price, currency)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.NewItem(sku, quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return order.Restore(id, dto.CustomerID, items)
}
