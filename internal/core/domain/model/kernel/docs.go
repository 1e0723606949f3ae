// Package kernel provides core domain primitives for the orders system.
// It implements the validated value objects the Order aggregate is built from,
// following Domain-Driven Design principles.
//
// The package includes:
//   - OrderID: the order identifier, an opaque code prefixed with "ORDER-"
//   - SKU: a normalized alphanumeric product code
//   - Quantity: a bounded positive item count
//   - Price: a decimal money amount with a 3-letter currency code
//
// Every value object enforces its invariants entirely at construction and is
// immutable afterwards. Zero values are invalid and fail Validate(), which is
// guaranteed by the embedded constructor guard.
package kernel
