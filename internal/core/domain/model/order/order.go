package order

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or Restore. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or Restore")

	// ErrDuplicateSKU is returned by Restore when the persisted lines
	// violate the one-line-per-SKU invariant.
	ErrDuplicateSKU = errors.New("order has more than one line for the same SKU")
)

// Order is the aggregate root for the order domain and the sole unit of
// transactional consistency for order mutations.
//
// Order follows these invariants:
//   - Must have a valid identifier and a non-empty customer id
//   - At most one line item per distinct SKU; adding an existing SKU merges
//     by summing quantities while the line keeps its original price
//   - The pending-events buffer only grows by appending; it is cleared only
//     by PullDomainEvents
//   - Identity and equality are determined by (id, customer id) alone
//
// The struct uses private fields to keep the invariants enforceable through
// its methods. It is not safe for concurrent mutation: the transaction that
// loaded the aggregate owns it exclusively.
type Order struct {
	id            kernel.OrderID
	customerID    string
	items         []Item
	pendingEvents []DomainEvent

	// isConstructed ensures the order was created via NewOrder or Restore
	isConstructed bool
}

// NewOrder creates a new Order for a customer and buffers the corresponding
// OrderCreated event. This is the only way to open a fresh order.
//
// Example:
//
//	id := kernel.NewOrderID()
//	o, err := order.NewOrder(id, "cust-1")
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(id kernel.OrderID, customerID string) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	o.pendingEvents = append(o.pendingEvents, NewOrderCreated(id, customerID))
	return o, nil
}

// Restore rebuilds a persisted Order from its stored lines without buffering
// any domain events. Persisted lines are expected to already satisfy the
// one-line-per-SKU invariant; Restore rejects input that does not.
//
// This is the reconstruction path for repository adapters only — business
// code opens orders through NewOrder.
func Restore(id kernel.OrderID, customerID string, items []Item) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if err := errors.Join(
			item.sku.Validate(),
			item.quantity.Validate(),
			item.price.Validate(),
		); err != nil {
			return nil, err
		}

		if _, ok := seen[item.sku.Code()]; ok {
			return nil, ErrDuplicateSKU
		}
		seen[item.sku.Code()] = struct{}{}
		o.items = append(o.items, item)
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for nil or zero-value instances.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerID returns the customer the order belongs to.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Items returns a snapshot of the order lines. Mutating the returned slice
// does not affect the aggregate.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// AddItem adds a quantity of a product to the order and buffers an ItemAdded
// event carrying the added delta.
//
// If a line with the same SKU already exists, its quantity is increased by
// the added quantity and the line keeps its original price; the supplied
// price only ends up on the event. Otherwise a new line is appended.
//
// On any validation failure the aggregate is left untouched.
func (o *Order) AddItem(sku kernel.SKU, quantity kernel.Quantity, price kernel.Price) error {
	if err := errors.Join(sku.Validate(), quantity.Validate(), price.Validate()); err != nil {
		return err
	}

	for i, existing := range o.items {
		if !existing.sku.IsEqual(sku) {
			continue
		}

		merged, err := existing.quantity.Add(quantity)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("quantity", err)
		}

		o.items[i].quantity = merged
		o.pendingEvents = append(o.pendingEvents, NewItemAdded(o.id, sku, quantity, price))
		return nil
	}

	o.items = append(o.items, Item{sku: sku, quantity: quantity, price: price})
	o.pendingEvents = append(o.pendingEvents, NewItemAdded(o.id, sku, quantity, price))
	return nil
}

// PullDomainEvents returns the buffered events and clears the buffer in the
// same step. The orchestration layer calls it exactly once per successful
// unit of work, strictly after commit. A second call returns an empty slice.
func (o *Order) PullDomainEvents() []DomainEvent {
	events := o.pendingEvents
	o.pendingEvents = nil
	return events
}

// IsEqual compares two orders by identifier and customer id.
// Line items do not participate in aggregate equality.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id) && o.customerID == other.customerID
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customer id")
	}
	o.customerID = customerID
	return nil
}
