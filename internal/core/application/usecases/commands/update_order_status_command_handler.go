package commands

import (
	"context"

	"ordering/internal/core/ports"
)

// UpdateOrderStatusCommandHandler sets the customer-facing status on a live
// order session. Observers subscribed to the session fire synchronously.
type UpdateOrderStatusCommandHandler struct {
	sessionStore ports.SessionStore
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(sessionStore ports.SessionStore) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		sessionStore: sessionStore,
	}
}

// Handle processes the update order status command.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.sessionStore.Get(cmd.OrderID())
	if err != nil {
		return err
	}

	o.UpdateStatus(cmd.Status())
	return nil
}
