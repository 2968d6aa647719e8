package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand represents a request to drop an item line from a
// session cart. Removing a name not in the cart is a no-op.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	itemName string

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to remove an item from the cart
// of the given order session.
func NewRemoveCartItemCommand(orderID kernel.UUID, itemName string) (RemoveCartItemCommand, error) {
	command := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setItemName(itemName),
	); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// OrderID returns the order session identifier.
func (c RemoveCartItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemName returns the menu item name to remove.
func (c RemoveCartItemCommand) ItemName() string {
	return c.itemName
}

func (c *RemoveCartItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveCartItemCommand) setItemName(itemName string) error {
	if itemName == "" {
		return ErrItemNameIsRequired
	}

	c.itemName = itemName
	return nil
}
