package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrCheckoutOrderCommandIsNotConstructed = errors.New(
	"CheckoutOrderCommand must be created via NewCheckoutOrderCommand constructor",
)

// CheckoutOrderCommand represents a request to validate an order session and
// produce its checkout snapshot: cart lines, pricing, and delivery address.
// No payment happens here; ConfirmOrderCommand settles the order.
type CheckoutOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckoutOrderCommand creates a command to check out the given order
// session.
func NewCheckoutOrderCommand(orderID kernel.UUID) (CheckoutOrderCommand, error) {
	command := CheckoutOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return CheckoutOrderCommand{}, err
	}
	command.orderID = orderID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutOrderCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutOrderCommandIsNotConstructed)
}

// OrderID returns the order session identifier.
func (c CheckoutOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
