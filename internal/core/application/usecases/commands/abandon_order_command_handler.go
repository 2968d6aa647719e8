package commands

import (
	"context"

	"ordering/internal/core/ports"
)

// AbandonOrderCommandHandler discards an order session without settling it.
// Confirmed sessions cannot be abandoned; their records already exist.
type AbandonOrderCommandHandler struct {
	sessionStore ports.SessionStore
}

// NewAbandonOrderCommandHandler creates a handler for abandoning sessions.
func NewAbandonOrderCommandHandler(sessionStore ports.SessionStore) AbandonOrderCommandHandler {
	return AbandonOrderCommandHandler{
		sessionStore: sessionStore,
	}
}

// Handle processes the abandon order command.
// The session is removed from the store only after the stage transition
// succeeds, so a terminal session surfaces an error instead of vanishing.
func (h *AbandonOrderCommandHandler) Handle(ctx context.Context, cmd AbandonOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.sessionStore.Get(cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Abandon(); err != nil {
		return err
	}

	h.sessionStore.Remove(cmd.OrderID())
	return nil
}
