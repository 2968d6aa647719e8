package queries

import (
	"context"

	"gorm.io/gorm"

	"ordering/internal/core/domain/model/order"
)

// GetActiveOrdersQueryHandler reads all undelivered order records from the
// database.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders still in flight.
// Returns records in any status except Delivered, oldest first so the
// longest-waiting orders come up top.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]OrderRecordResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			delivery_address,
			total,
			transaction_id,
			status,
			estimated_delivery,
			placed_at
		FROM order_records
		WHERE status != ?
		ORDER BY placed_at
	`, order.StatusDelivered).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRecords(rows)
}
