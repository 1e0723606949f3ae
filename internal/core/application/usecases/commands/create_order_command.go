package commands

import (
	"errors"

	"orders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerIDIsRequired = errors.New("customer id is required")
)

// CreateOrderCommand represents a request to open a new order for a customer.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open an order.
// The customer id must not be empty.
func NewCreateOrderCommand(customerID string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCustomerID(customerID); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the customer the order is opened for.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}
