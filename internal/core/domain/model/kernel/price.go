package kernel

import (
	"fmt"
	"strings"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// CurrencyLength is the exact length of an ISO-4217 currency code.
const CurrencyLength = 3

// ErrPriceIsNotConstructed is returned when validating a zero-value Price.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("price must be created via NewPrice")

// Price is a money amount paired with a currency code. The amount is
// non-negative and quantized to two fractional digits (rounding half away
// from zero); the currency is an upper-cased 3-letter code.
//
// Price is an immutable value object; equality compares quantized amount
// and currency. The zero value is invalid and fails Validate().
type Price struct {
	amount   decimal.Decimal
	currency string
	guard    guard.ConstructorGuard
}

// NewPrice validates and quantizes a money amount.
func NewPrice(amount decimal.Decimal, currency string) (Price, error) {
	if amount.IsNegative() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price amount",
			fmt.Errorf("%s is negative", amount))
	}

	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != CurrencyLength {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a 3-letter code", currency))
	}

	return Price{
		amount:   amount.Round(2),
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// PriceFromString parses a decimal amount from its string representation.
func PriceFromString(amount string, currency string) (Price, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price amount", err)
	}
	return NewPrice(d, currency)
}

// Amount returns the quantized amount.
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// Currency returns the upper-cased 3-letter currency code.
func (p Price) Currency() string {
	return p.currency
}

// Mul returns the subtotal for the given quantity of items at this price.
func (p Price) Mul(quantity Quantity) decimal.Decimal {
	return p.amount.Mul(decimal.NewFromInt(int64(quantity.Value())))
}

// String formats the price as "<amount> <currency>", e.g. "19.99 EUR".
func (p Price) String() string {
	return fmt.Sprintf("%s %s", p.amount.StringFixed(2), p.currency)
}

// IsEqual compares quantized amount and currency.
func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount) && p.currency == other.currency
}

// Validate checks that the Price was built through a constructor.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}
