package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrAddCartItemCommandIsNotConstructed = errors.New(
		"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
	)
	ErrItemNameIsRequired = errors.New("item name is required")
	ErrQuantityIsInvalid  = errors.New("quantity must be greater than 0")
)

// AddCartItemCommand represents a request to put an item into a session cart.
// Adding a name already in the cart merges quantities instead of creating a
// second line.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	itemName  string
	unitPrice kernel.Money
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add an item to the cart of the
// given order session. Validates that the session id and unit price are
// constructed, the item name is not empty, and the quantity is positive.
func NewAddCartItemCommand(
	orderID kernel.UUID,
	itemName string,
	unitPrice kernel.Money,
	quantity int,
) (AddCartItemCommand, error) {
	command := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setItemName(itemName),
		command.setUnitPrice(unitPrice),
		command.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// OrderID returns the order session identifier.
func (c AddCartItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemName returns the menu item name to add.
func (c AddCartItemCommand) ItemName() string {
	return c.itemName
}

// UnitPrice returns the per-unit price of the item.
func (c AddCartItemCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

// Quantity returns the number of units to add.
func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddCartItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddCartItemCommand) setItemName(itemName string) error {
	if itemName == "" {
		return ErrItemNameIsRequired
	}

	c.itemName = itemName
	return nil
}

func (c *AddCartItemCommand) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}

	c.unitPrice = unitPrice
	return nil
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
