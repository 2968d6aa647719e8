package commands

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var (
	ErrAddProfileAddressCommandIsNotConstructed = errors.New(
		"AddProfileAddressCommand must be created via NewAddProfileAddressCommand constructor",
	)
	ErrAddressLabelIsRequired = errors.New("address label is required")
	ErrAddressIsRequired      = errors.New("address is required")
)

// AddProfileAddressCommand represents a request to store a labeled delivery
// address on a customer profile, for example "home" or "work". The first
// address a customer adds becomes their current delivery address.
type AddProfileAddressCommand struct { //nolint:recvcheck //using for validation
	customerID string
	label      string
	address    string

	guard guard.ConstructorGuard
}

// NewAddProfileAddressCommand creates a command to add a labeled address to
// the customer's profile.
func NewAddProfileAddressCommand(customerID, label, address string) (AddProfileAddressCommand, error) {
	command := AddProfileAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setLabel(label),
		command.setAddress(address),
	); err != nil {
		return AddProfileAddressCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddProfileAddressCommand) Validate() error {
	return c.guard.Validate(ErrAddProfileAddressCommandIsNotConstructed)
}

// CustomerID returns the profile owner.
func (c AddProfileAddressCommand) CustomerID() string {
	return c.customerID
}

// Label returns the address label.
func (c AddProfileAddressCommand) Label() string {
	return c.label
}

// Address returns the delivery address text.
func (c AddProfileAddressCommand) Address() string {
	return c.address
}

func (c *AddProfileAddressCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}

func (c *AddProfileAddressCommand) setLabel(label string) error {
	if label == "" {
		return ErrAddressLabelIsRequired
	}

	c.label = label
	return nil
}

func (c *AddProfileAddressCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}
