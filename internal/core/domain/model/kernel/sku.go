package kernel

import (
	"fmt"
	"strings"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

const (
	// SKUMinLength is the minimum length of a normalized SKU code.
	SKUMinLength = 8
	// SKUMaxLength is the maximum length of a normalized SKU code.
	SKUMaxLength = 12
)

// ErrSKUIsNotConstructed is returned when validating a zero-value SKU.
var ErrSKUIsNotConstructed = errs.NewValueIsRequiredError("sku must be created via NewSKU")

// SKU is a product code. Input is trimmed and upper-cased; the normalized
// code must be 8 to 12 alphanumeric characters.
//
// SKU is an immutable value object with equality by normalized code.
// The zero value is invalid and fails Validate().
type SKU struct {
	code  string
	guard guard.ConstructorGuard
}

// NewSKU normalizes and validates a raw product code.
func NewSKU(code string) (SKU, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	if len(code) < SKUMinLength || len(code) > SKUMaxLength {
		return SKU{}, errs.NewValueIsOutOfRangeError("sku length", len(code), SKUMinLength, SKUMaxLength)
	}

	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return SKU{}, errs.NewValueIsInvalidErrorWithCause("sku",
				fmt.Errorf("%q is not alphanumeric", code))
		}
	}

	return SKU{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Code returns the normalized upper-case code.
func (s SKU) Code() string {
	return s.code
}

// String implements fmt.Stringer.
func (s SKU) String() string {
	return s.code
}

// IsEqual compares two SKUs by normalized code.
func (s SKU) IsEqual(other SKU) bool {
	return s.code == other.code
}

// Validate checks that the SKU was built through NewSKU.
func (s SKU) Validate() error {
	return s.guard.Validate(ErrSKUIsNotConstructed)
}
