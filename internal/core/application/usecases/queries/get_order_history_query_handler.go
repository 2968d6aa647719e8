package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ordering/internal/core/domain/model/kernel"
)

// GetOrderHistoryQueryHandler reads a customer's confirmed orders from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the query to retrieve the customer's order history.
// Records are returned newest first. A customer with no confirmed orders
// gets an empty slice, not an error.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
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
		WHERE customer_id = ?
		ORDER BY placed_at DESC
	`, query.CustomerID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRecords(rows)
}

// scanOrderRecords maps order_records rows into read models.
// Shared by the history and active-orders query handlers.
func scanOrderRecords(rows *sql.Rows) ([]OrderRecordResponse, error) {
	records := make([]OrderRecordResponse, 0)

	for rows.Next() {
		var record OrderRecordResponse
		var id uuid.UUID
		var total decimal.Decimal

		err := rows.Scan(
			&id,
			&record.CustomerID,
			&record.DeliveryAddress,
			&total,
			&record.TransactionID,
			&record.Status,
			&record.EstimatedDelivery,
			&record.PlacedAt,
		)
		if err != nil {
			return nil, err
		}

		recordID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		record.ID = recordID

		money, moneyErr := kernel.NewMoney(total)
		if moneyErr != nil {
			return nil, moneyErr
		}
		record.Total = money

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
