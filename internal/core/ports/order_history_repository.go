package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderHistoryRepository defines the persistence contract for confirmed order
// records. Records are written once at confirmation and updated as the
// delivery status progresses.
type OrderHistoryRepository interface {
	// Add persists a new confirmed order record.
	// The record must be valid and not already exist in the repository.
	Add(ctx context.Context, record order.Record) error

	// Update persists changes to an existing record, notably status advances.
	Update(ctx context.Context, record order.Record) error

	// Get retrieves a record by its permanent order number.
	Get(ctx context.Context, id kernel.UUID) (order.Record, error)

	// GetAllUndelivered retrieves records whose delivery has not completed.
	// Used by the delivery progression job to find orders still in flight.
	GetAllUndelivered(ctx context.Context) ([]order.Record, error)
}
