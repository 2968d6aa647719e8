package commands

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var ErrRemoveProfileAddressCommandIsNotConstructed = errors.New(
	"RemoveProfileAddressCommand must be created via NewRemoveProfileAddressCommand constructor",
)

// RemoveProfileAddressCommand represents a request to delete a labeled
// address from a customer profile. Removing an unknown label is a no-op.
type RemoveProfileAddressCommand struct { //nolint:recvcheck //using for validation
	customerID string
	label      string

	guard guard.ConstructorGuard
}

// NewRemoveProfileAddressCommand creates a command to remove a labeled
// address from the customer's profile.
func NewRemoveProfileAddressCommand(customerID, label string) (RemoveProfileAddressCommand, error) {
	command := RemoveProfileAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setLabel(label),
	); err != nil {
		return RemoveProfileAddressCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveProfileAddressCommand) Validate() error {
	return c.guard.Validate(ErrRemoveProfileAddressCommandIsNotConstructed)
}

// CustomerID returns the profile owner.
func (c RemoveProfileAddressCommand) CustomerID() string {
	return c.customerID
}

// Label returns the label of the address to remove.
func (c RemoveProfileAddressCommand) Label() string {
	return c.label
}

func (c *RemoveProfileAddressCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}

func (c *RemoveProfileAddressCommand) setLabel(label string) error {
	if label == "" {
		return ErrAddressLabelIsRequired
	}

	c.label = label
	return nil
}
