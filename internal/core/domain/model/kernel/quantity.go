package kernel

import (
	"strconv"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

const (
	// QuantityMin is the smallest orderable quantity.
	QuantityMin = 1
	// QuantityMax is the largest orderable quantity.
	QuantityMax = 999
)

// ErrQuantityIsNotConstructed is returned when validating a zero-value Quantity.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError("quantity must be created via NewQuantity")

// Quantity is a positive item count in the range [QuantityMin, QuantityMax].
//
// Quantity is an immutable value object with equality by value.
// The zero value is invalid and fails Validate().
type Quantity struct {
	value int
	guard guard.ConstructorGuard
}

// NewQuantity validates a raw count.
func NewQuantity(value int) (Quantity, error) {
	if value < QuantityMin || value > QuantityMax {
		return Quantity{}, errs.NewValueIsOutOfRangeError("quantity", value, QuantityMin, QuantityMax)
	}

	return Quantity{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Value returns the item count.
func (q Quantity) Value() int {
	return q.value
}

// Add returns a quantity increased by other. The sum is validated against
// the same bounds as NewQuantity.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	return NewQuantity(q.value + other.value)
}

// String implements fmt.Stringer.
func (q Quantity) String() string {
	return strconv.Itoa(q.value)
}

// IsEqual compares two quantities by value.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.value == other.value
}

// Validate checks that the Quantity was built through NewQuantity.
func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}
