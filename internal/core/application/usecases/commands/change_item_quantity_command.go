package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrChangeItemQuantityCommandIsNotConstructed = errors.New(
	"ChangeItemQuantityCommand must be created via NewChangeItemQuantityCommand constructor",
)

// ChangeItemQuantityCommand represents a request to set the quantity of an
// item line already in a session cart.
type ChangeItemQuantityCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	itemName string
	quantity int

	guard guard.ConstructorGuard
}

// NewChangeItemQuantityCommand creates a command to change the quantity of a
// cart line. Validates that the new quantity is positive; dropping a line
// entirely is RemoveCartItemCommand's job.
func NewChangeItemQuantityCommand(
	orderID kernel.UUID,
	itemName string,
	quantity int,
) (ChangeItemQuantityCommand, error) {
	command := ChangeItemQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setItemName(itemName),
		command.setQuantity(quantity),
	); err != nil {
		return ChangeItemQuantityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrChangeItemQuantityCommandIsNotConstructed)
}

// OrderID returns the order session identifier.
func (c ChangeItemQuantityCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemName returns the menu item name whose quantity changes.
func (c ChangeItemQuantityCommand) ItemName() string {
	return c.itemName
}

// Quantity returns the new quantity for the line.
func (c ChangeItemQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *ChangeItemQuantityCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeItemQuantityCommand) setItemName(itemName string) error {
	if itemName == "" {
		return ErrItemNameIsRequired
	}

	c.itemName = itemName
	return nil
}

func (c *ChangeItemQuantityCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
