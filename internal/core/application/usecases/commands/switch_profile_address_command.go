package commands

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var ErrSwitchProfileAddressCommandIsNotConstructed = errors.New(
	"SwitchProfileAddressCommand must be created via NewSwitchProfileAddressCommand constructor",
)

// SwitchProfileAddressCommand represents a request to make one of the
// customer's stored addresses the current delivery address.
type SwitchProfileAddressCommand struct { //nolint:recvcheck //using for validation
	customerID string
	label      string

	guard guard.ConstructorGuard
}

// NewSwitchProfileAddressCommand creates a command to switch the customer's
// current delivery address to the one stored under the given label.
func NewSwitchProfileAddressCommand(customerID, label string) (SwitchProfileAddressCommand, error) {
	command := SwitchProfileAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setLabel(label),
	); err != nil {
		return SwitchProfileAddressCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SwitchProfileAddressCommand) Validate() error {
	return c.guard.Validate(ErrSwitchProfileAddressCommandIsNotConstructed)
}

// CustomerID returns the profile owner.
func (c SwitchProfileAddressCommand) CustomerID() string {
	return c.customerID
}

// Label returns the label of the address to switch to.
func (c SwitchProfileAddressCommand) Label() string {
	return c.label
}

func (c *SwitchProfileAddressCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}

func (c *SwitchProfileAddressCommand) setLabel(label string) error {
	if label == "" {
		return ErrAddressLabelIsRequired
	}

	c.label = label
	return nil
}
