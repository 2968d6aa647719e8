package commands

import (
	"context"

	"ordering/internal/core/ports"
)

// ChangeItemQuantityCommandHandler sets the quantity of a live cart line.
type ChangeItemQuantityCommandHandler struct {
	sessionStore ports.SessionStore
}

// NewChangeItemQuantityCommandHandler creates a handler for cart quantity changes.
func NewChangeItemQuantityCommandHandler(sessionStore ports.SessionStore) ChangeItemQuantityCommandHandler {
	return ChangeItemQuantityCommandHandler{
		sessionStore: sessionStore,
	}
}

// Handle processes the change item quantity command.
// Returns an object-not-found error when the named item is not in the cart.
func (h *ChangeItemQuantityCommandHandler) Handle(ctx context.Context, cmd ChangeItemQuantityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.sessionStore.Get(cmd.OrderID())
	if err != nil {
		return err
	}

	return o.Cart().UpdateQuantity(cmd.ItemName(), cmd.Quantity())
}
