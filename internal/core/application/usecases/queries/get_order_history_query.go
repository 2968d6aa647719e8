// Package queries contains read-only operations over persisted state.
// Implements the Query side of the CQRS architecture: handlers read straight
// from the database (or session store) and return flat response models,
// bypassing the domain aggregates.
package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
		"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
	)
	ErrCustomerIDIsRequired = errors.New("customer id is required")
)

// GetOrderHistoryQuery retrieves a customer's confirmed orders, newest first.
//
// Example:
//
//	query, err := NewGetOrderHistoryQuery("alice")
//	if err != nil {
//	    return fmt.Errorf("invalid history request: %w", err)
//	}
//
//	handler := NewGetOrderHistoryQueryHandler(db)
//	history, err := handler.Handle(ctx, query)
type GetOrderHistoryQuery struct { //nolint:recvcheck //using for validation
	customerID string

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a query for the given customer's order
// history.
func NewGetOrderHistoryQuery(customerID string) (GetOrderHistoryQuery, error) {
	query := GetOrderHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if customerID == "" {
		return GetOrderHistoryQuery{}, ErrCustomerIDIsRequired
	}
	query.customerID = customerID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// CustomerID returns the customer whose history is requested.
func (q GetOrderHistoryQuery) CustomerID() string {
	return q.customerID
}

// OrderRecordResponse represents one confirmed order in a read result.
type OrderRecordResponse struct {
	ID                kernel.UUID
	CustomerID        string
	DeliveryAddress   string
	Total             kernel.Money
	TransactionID     string
	Status            string
	EstimatedDelivery string
	PlacedAt          time.Time
}
