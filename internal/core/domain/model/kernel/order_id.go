package kernel

import (
	"strings"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"

	"github.com/google/uuid"
)

// OrderIDPrefix is the mandatory prefix every order identifier carries.
const OrderIDPrefix = "ORDER-"

// ErrOrderIDIsNotConstructed is returned when validating a zero-value OrderID.
// OrderIDs must be created via NewOrderID or OrderIDFromString.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"order id must be created via NewOrderID or OrderIDFromString")

// OrderID identifies an Order aggregate. It is an opaque code that always
// starts with OrderIDPrefix; generated identifiers embed a random UUID.
//
// OrderID is an immutable value object with equality by normalized code.
// The zero value is invalid and fails Validate().
type OrderID struct {
	code  string
	guard guard.ConstructorGuard
}

// NewOrderID generates a fresh identifier of the form "ORDER-<uuid>".
func NewOrderID() OrderID {
	return OrderID{
		code:  OrderIDPrefix + uuid.NewString(),
		guard: guard.NewConstructorGuard(),
	}
}

// OrderIDFromString normalizes an externally supplied code into an OrderID.
// The code is trimmed and, when the prefix is missing, prefixed with
// OrderIDPrefix. An empty code is rejected.
func OrderIDFromString(code string) (OrderID, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return OrderID{}, errs.NewValueIsRequiredError("order id")
	}

	if !strings.HasPrefix(code, OrderIDPrefix) {
		code = OrderIDPrefix + code
	}

	return OrderID{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the normalized code, including the "ORDER-" prefix.
func (id OrderID) String() string {
	return id.code
}

// IsEqual compares two identifiers by normalized code.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.code == other.code
}

// Validate checks that the OrderID was built through a constructor.
func (id OrderID) Validate() error {
	return id.guard.Validate(ErrOrderIDIsNotConstructed)
}
