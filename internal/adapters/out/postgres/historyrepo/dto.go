// Package historyrepo provides data transfer objects and mapping functions
// for order record persistence. This package implements the repository
// pattern for confirmed orders, converting between the domain record and its
// database representation.
package historyrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// RecordDTO represents the database structure for persisting confirmed
// orders. Indexed by customer and status for the history and progression
// queries.
type RecordDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID        string    `gorm:"index"`
	DeliveryAddress   string
	Total             decimal.Decimal `gorm:"type:numeric(12,2)"`
	TransactionID     string
	Status            string `gorm:"index"`
	EstimatedDelivery string
	PlacedAt          time.Time
}

// TableName specifies the database table name for order records.
func (RecordDTO) TableName() string {
	return "order_records"
}

// fromDomain converts an order record to its database representation.
func fromDomain(record order.Record) RecordDTO {
	return RecordDTO{
		ID:                record.ID.Bytes(),
		CustomerID:        record.CustomerID,
		DeliveryAddress:   record.DeliveryAddress,
		Total:             record.Total.Amount(),
		TransactionID:     record.TransactionID,
		Status:            record.Status,
		EstimatedDelivery: record.EstimatedDelivery,
		PlacedAt:          record.PlacedAt,
	}
}

// toDomain converts a database DTO to an order record using RestoreRecord.
func toDomain(dto RecordDTO) (order.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Record{}, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return order.Record{}, err
	}

	return order.RestoreRecord(
		id,
		dto.CustomerID,
		dto.DeliveryAddress,
		total,
		dto.TransactionID,
		dto.Status,
		dto.EstimatedDelivery,
		dto.PlacedAt,
	)
}
