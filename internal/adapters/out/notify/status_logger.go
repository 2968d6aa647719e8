// Package notify contains outbound adapters for customer-facing order status
// notifications.
package notify

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/kernel"
)

// StatusLogger is a status observer that records every customer-facing status
// change in the structured log. It stands in for real notification channels
// (push, SMS) which are integrated outside this service.
type StatusLogger struct {
	logger *slog.Logger
}

// NewStatusLogger creates a status observer writing to the given logger.
func NewStatusLogger(logger *slog.Logger) *StatusLogger {
	return &StatusLogger{
		logger: logger.With("component", "status_notifier"),
	}
}

// OrderStatusChanged logs the new status for the given order.
func (l *StatusLogger) OrderStatusChanged(orderID kernel.UUID, status string) {
	l.logger.InfoContext(context.Background(), "Order status changed",
		"order_id", orderID.String(),
		"status", status,
	)
}
