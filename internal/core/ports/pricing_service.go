package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
)

// PricingService is the price-lookup port. A static table satisfies it for
// the reference system; a remote catalogue can be substituted without
// touching use cases.
type PricingService interface {
	// GetPrice returns the unit price for a SKU. An unknown SKU is reported
	// as errs.ObjectNotFoundError — a common, valid outcome.
	GetPrice(ctx context.Context, sku kernel.SKU) (kernel.Price, error)

	// ProductExists reports whether the SKU is priced.
	ProductExists(ctx context.Context, sku kernel.SKU) (bool, error)
}
