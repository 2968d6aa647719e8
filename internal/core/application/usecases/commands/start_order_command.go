package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrStartOrderCommandIsNotConstructed = errors.New(
		"StartOrderCommand must be created via NewStartOrderCommand constructor",
	)
	ErrCustomerIDIsRequired = errors.New("customer id is required")
)

// StartOrderCommand represents a request to open a new order session for a
// customer: an empty cart bound to the customer's profile and the restaurant
// catalog.
//
// Example:
//
//	sessionID := kernel.NewUUID()
//	cmd, err := NewStartOrderCommand(sessionID, "alice")
//	if err != nil {
//	    return fmt.Errorf("invalid order session data: %w", err)
//	}
//
//	handler := NewStartOrderCommandHandler(sessionStore, catalog, observer, uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to start order: %w", err)
//	}
type StartOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID string

	guard guard.ConstructorGuard
}

// NewStartOrderCommand creates a command to open a new order session.
// Validates that the session id is valid and the customer id is not empty.
func NewStartOrderCommand(orderID kernel.UUID, customerID string) (StartOrderCommand, error) {
	command := StartOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCustomerID(customerID),
	); err != nil {
		return StartOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderCommandIsNotConstructed)
}

// OrderID returns the session identifier for the new order.
func (c StartOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the customer opening the session.
func (c StartOrderCommand) CustomerID() string {
	return c.customerID
}

func (c *StartOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}
