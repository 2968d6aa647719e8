package queries

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var ErrGetProfileQueryIsNotConstructed = errors.New(
	"GetProfileQuery must be created via NewGetProfileQuery constructor",
)

// GetProfileQuery retrieves a customer's profile: labeled addresses, favorite
// restaurants, and dish ratings.
type GetProfileQuery struct { //nolint:recvcheck //using for validation
	customerID string

	guard guard.ConstructorGuard
}

// NewGetProfileQuery creates a query for the given customer's profile.
func NewGetProfileQuery(customerID string) (GetProfileQuery, error) {
	query := GetProfileQuery{
		guard: guard.NewConstructorGuard(),
	}

	if customerID == "" {
		return GetProfileQuery{}, ErrCustomerIDIsRequired
	}
	query.customerID = customerID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

// CustomerID returns the customer whose profile is requested.
func (q GetProfileQuery) CustomerID() string {
	return q.customerID
}

// ProfileAddressResponse represents one labeled address in a read result.
type ProfileAddressResponse struct {
	Label   string
	Address string
	Current bool
}

// GetProfileQueryResponse is the profile read model.
type GetProfileQueryResponse struct {
	CustomerID string
	Addresses  []ProfileAddressResponse
	Favorites  []string
	Ratings    map[string]int
}
