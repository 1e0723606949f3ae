// Package pricing implements the price-lookup port over a static catalogue.
package pricing

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const catalogCurrency = "EUR"

// defaultCatalog is the seed product table. Amounts are unit prices in EUR.
var defaultCatalog = map[string]string{
	"LAPTOP123":      "999.99",
	"MOUSE456":       "29.99",
	"KEYBOARD789":    "39.99",
	"MOTHERBOARD321": "199.99",
	"HEADPHONES654":  "89.99",
	"GRAPHICS987":    "499.99",
	"MONITOR147":     "249.99",
	"PRINTER258":     "149.99",
	"WEBCAM369":      "79.99",
	"SPEAKERS159":    "59.99",
}

// StaticPricingService resolves prices from an in-process table. The table
// is immutable after construction, so lookups need no locking.
type StaticPricingService struct {
	prices map[string]kernel.Price
}

// NewStaticPricingService creates the service seeded with the default
// catalogue.
func NewStaticPricingService() (*StaticPricingService, error) {
	prices := make(map[string]kernel.Price, len(defaultCatalog))
	for code, amount := range defaultCatalog {
		price, err := kernel.NewPrice(decimal.RequireFromString(amount), catalogCurrency)
		if err != nil {
			return nil, err
		}
		prices[code] = price
	}

	return &StaticPricingService{prices: prices}, nil
}

// GetPrice returns the unit price for a SKU. Unknown SKUs are reported as
// errs.ObjectNotFoundError.
func (s *StaticPricingService) GetPrice(_ context.Context, sku kernel.SKU) (kernel.Price, error) {
	if err := sku.Validate(); err != nil {
		return kernel.Price{}, err
	}

	price, ok := s.prices[sku.Code()]
	if !ok {
		return kernel.Price{}, errs.NewObjectNotFoundError("sku", sku.Code())
	}
	return price, nil
}

// ProductExists reports whether the SKU is priced.
func (s *StaticPricingService) ProductExists(_ context.Context, sku kernel.SKU) (bool, error) {
	if err := sku.Validate(); err != nil {
		return false, err
	}

	_, ok := s.prices[sku.Code()]
	return ok, nil
}
