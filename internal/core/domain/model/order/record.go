package order

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// Customer-facing status labels for the standard delivery progression.
// Status is free text, so any string is a legal status; these are the values
// the service itself assigns.
const (
	StatusPending        = "Pending"
	StatusConfirmed      = "Confirmed"
	StatusPreparing      = "Preparing"
	StatusOutForDelivery = "Out for Delivery"
	StatusDelivered      = "Delivered"
)

// NextDeliveryStatus returns the next label in the standard delivery
// progression Confirmed -> Preparing -> Out for Delivery -> Delivered.
// The second result is false when the current label has no successor,
// either because delivery completed or because the label is custom text.
func NextDeliveryStatus(current string) (string, bool) {
	switch current {
	case StatusConfirmed:
		return StatusPreparing, true
	case StatusPreparing:
		return StatusOutForDelivery, true
	case StatusOutForDelivery:
		return StatusDelivered, true
	default:
		return "", false
	}
}

// ErrRecordIsNotConstructed is returned when a Record was not created through
// the NewRecord factory method.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

// Record is the persistent trace of a confirmed order: what the customer owes,
// where it goes, and how far along the delivery is. Records are written once
// at confirmation and then advance through the delivery status progression.
//
// Unlike the in-flight Order session, a Record has no cart and no workflow
// machine; it is the durable order-history entry.
type Record struct {
	// ID is the permanent order number issued at confirmation
	ID kernel.UUID

	// CustomerID names the customer who placed the order
	CustomerID string

	// DeliveryAddress is the address snapshot taken at confirmation
	DeliveryAddress string

	// Total is the amount charged, including tax and delivery fee
	Total kernel.Money

	// TransactionID is the payment gateway transaction reference
	TransactionID string

	// Status is the customer-facing delivery status label
	Status string

	// EstimatedDelivery is the delivery estimate issued at confirmation
	EstimatedDelivery string

	// PlacedAt is the confirmation timestamp
	PlacedAt time.Time

	isConstructed bool
}

// NewRecord creates the history record for a confirmed order.
// The record starts in the Confirmed status.
func NewRecord(
	id kernel.UUID,
	customerID string,
	deliveryAddress string,
	total kernel.Money,
	transactionID string,
	estimatedDelivery string,
	placedAt time.Time,
) (Record, error) {
	if err := errors.Join(
		id.Validate(),
		total.Validate(),
		requireString("customer id", customerID),
		requireString("delivery address", deliveryAddress),
		requireString("transaction id", transactionID),
	); err != nil {
		return Record{}, err
	}

	return Record{
		ID:                id,
		CustomerID:        customerID,
		DeliveryAddress:   deliveryAddress,
		Total:             total,
		TransactionID:     transactionID,
		Status:            StatusConfirmed,
		EstimatedDelivery: estimatedDelivery,
		PlacedAt:          placedAt,
		isConstructed:     true,
	}, nil
}

// RestoreRecord reconstructs a Record from persistence without re-running the
// confirmation-time defaults. Used by repository implementations only.
func RestoreRecord(
	id kernel.UUID,
	customerID string,
	deliveryAddress string,
	total kernel.Money,
	transactionID string,
	status string,
	estimatedDelivery string,
	placedAt time.Time,
) (Record, error) {
	record, err := NewRecord(id, customerID, deliveryAddress, total, transactionID, estimatedDelivery, placedAt)
	if err != nil {
		return Record{}, err
	}

	record.Status = status
	return record, nil
}

// Validate ensures the Record was created through one of the constructors.
func (r Record) Validate() error {
	if !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// AdvanceStatus moves the record one step along the standard delivery
// progression. Returns false when the record cannot advance further.
func (r *Record) AdvanceStatus() bool {
	next, ok := NextDeliveryStatus(r.Status)
	if !ok {
		return false
	}
	r.Status = next
	return true
}

func requireString(paramName, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
