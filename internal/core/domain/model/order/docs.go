// Package order provides the Order aggregate root and its domain events.
//
// The package includes:
//   - Order: the aggregate root owning its line items and a buffer of
//     not-yet-published domain events
//   - Item: a line item, one entry per distinct SKU
//   - OrderCreated, ItemAdded: immutable domain events
//
// Key business rules:
//   - At most one line item per distinct SKU; adding an existing SKU merges
//     by summing quantities while the original price is kept
//   - Every mutation that changes observable state buffers a domain event;
//     events are drained exactly once via PullDomainEvents after the owning
//     transaction commits
//   - Aggregate identity and equality are determined by (order id, customer id)
//
// The aggregate is not safe for concurrent mutation: it is owned exclusively
// by the transaction that loaded it.
package order
