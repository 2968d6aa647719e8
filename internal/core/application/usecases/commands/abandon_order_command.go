package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrAbandonOrderCommandIsNotConstructed = errors.New(
	"AbandonOrderCommand must be created via NewAbandonOrderCommand constructor",
)

// AbandonOrderCommand represents a request to give up an order session:
// the session is marked failed and discarded without payment.
type AbandonOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAbandonOrderCommand creates a command to abandon the given order session.
func NewAbandonOrderCommand(orderID kernel.UUID) (AbandonOrderCommand, error) {
	command := AbandonOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return AbandonOrderCommand{}, err
	}
	command.orderID = orderID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AbandonOrderCommand) Validate() error {
	return c.guard.Validate(ErrAbandonOrderCommandIsNotConstructed)
}

// OrderID returns the order session identifier.
func (c AbandonOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
