package commands

import (
	"context"

	"ordering/internal/core/ports"
)

// RemoveCartItemCommandHandler drops item lines from a live session cart.
type RemoveCartItemCommandHandler struct {
	sessionStore ports.SessionStore
}

// NewRemoveCartItemCommandHandler creates a handler for cart item removals.
func NewRemoveCartItemCommandHandler(sessionStore ports.SessionStore) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		sessionStore: sessionStore,
	}
}

// Handle processes the remove cart item command.
// Removal is idempotent: a name not present in the cart leaves it unchanged.
func (h *RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.sessionStore.Get(cmd.OrderID())
	if err != nil {
		return err
	}

	o.Cart().RemoveItem(cmd.ItemName())
	return nil
}
