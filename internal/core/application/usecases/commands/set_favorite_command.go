package commands

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var (
	ErrSetFavoriteCommandIsNotConstructed = errors.New(
		"SetFavoriteCommand must be created via NewSetFavoriteCommand constructor",
	)
	ErrRestaurantNameIsRequired = errors.New("restaurant name is required")
)

// SetFavoriteCommand represents a request to mark or unmark a restaurant as
// one of the customer's favorites. Both directions are idempotent.
type SetFavoriteCommand struct { //nolint:recvcheck //using for validation
	customerID     string
	restaurantName string
	favored        bool

	guard guard.ConstructorGuard
}

// NewSetFavoriteCommand creates a command to set or clear a favorite
// restaurant on the customer's profile.
func NewSetFavoriteCommand(customerID, restaurantName string, favored bool) (SetFavoriteCommand, error) {
	command := SetFavoriteCommand{
		favored: favored,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setRestaurantName(restaurantName),
	); err != nil {
		return SetFavoriteCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetFavoriteCommand) Validate() error {
	return c.guard.Validate(ErrSetFavoriteCommandIsNotConstructed)
}

// CustomerID returns the profile owner.
func (c SetFavoriteCommand) CustomerID() string {
	return c.customerID
}

// RestaurantName returns the restaurant being favored or unfavored.
func (c SetFavoriteCommand) RestaurantName() string {
	return c.restaurantName
}

// Favored reports whether the restaurant should be a favorite after the command.
func (c SetFavoriteCommand) Favored() bool {
	return c.favored
}

func (c *SetFavoriteCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}

func (c *SetFavoriteCommand) setRestaurantName(restaurantName string) error {
	if restaurantName == "" {
		return ErrRestaurantNameIsRequired
	}

	c.restaurantName = restaurantName
	return nil
}
