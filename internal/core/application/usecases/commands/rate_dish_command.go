package commands

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var (
	ErrRateDishCommandIsNotConstructed = errors.New(
		"RateDishCommand must be created via NewRateDishCommand constructor",
	)
	ErrDishNameIsRequired = errors.New("dish name is required")
)

// RateDishCommand represents a request to rate a dish on the customer's
// profile. Rating a dish again replaces the previous rating. The rating range
// itself is enforced by the profile aggregate.
type RateDishCommand struct { //nolint:recvcheck //using for validation
	customerID string
	dishName   string
	rating     int

	guard guard.ConstructorGuard
}

// NewRateDishCommand creates a command to rate a dish.
func NewRateDishCommand(customerID, dishName string, rating int) (RateDishCommand, error) {
	command := RateDishCommand{
		rating: rating,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setDishName(dishName),
	); err != nil {
		return RateDishCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RateDishCommand) Validate() error {
	return c.guard.Validate(ErrRateDishCommandIsNotConstructed)
}

// CustomerID returns the profile owner.
func (c RateDishCommand) CustomerID() string {
	return c.customerID
}

// DishName returns the dish being rated.
func (c RateDishCommand) DishName() string {
	return c.dishName
}

// Rating returns the requested rating value.
func (c RateDishCommand) Rating() int {
	return c.rating
}

func (c *RateDishCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}

func (c *RateDishCommand) setDishName(dishName string) error {
	if dishName == "" {
		return ErrDishNameIsRequired
	}

	c.dishName = dishName
	return nil
}
