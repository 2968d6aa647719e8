package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves the current cart snapshot of a live order session:
// item lines plus derived pricing.
type GetCartQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the cart of the given order session.
func NewGetCartQuery(orderID kernel.UUID) (GetCartQuery, error) {
	query := GetCartQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return GetCartQuery{}, err
	}
	query.orderID = orderID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// OrderID returns the order session identifier.
func (q GetCartQuery) OrderID() kernel.UUID {
	return q.orderID
}

// CartItemResponse represents one cart line in a read result.
type CartItemResponse struct {
	Name     string
	Quantity int
	Subtotal kernel.Money
}

// GetCartQueryResponse is the cart snapshot: lines, derived pricing, and the
// session's customer-facing status.
type GetCartQueryResponse struct {
	Items       []CartItemResponse
	Subtotal    kernel.Money
	Tax         kernel.Money
	DeliveryFee kernel.Money
	Total       kernel.Money
	Status      string
}
