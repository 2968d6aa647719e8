package commands

import (
	"context"

	"ordering/internal/core/ports"
)

// AddCartItemCommandHandler puts items into a live session cart.
// Cart mutations go straight to the session store; carts are session state
// and are never persisted.
type AddCartItemCommandHandler struct {
	sessionStore ports.SessionStore
}

// NewAddCartItemCommandHandler creates a handler for cart item additions.
func NewAddCartItemCommandHandler(sessionStore ports.SessionStore) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		sessionStore: sessionStore,
	}
}

// Handle processes the add cart item command.
// Looks up the live session and adds the item to its cart, merging with an
// existing line of the same name.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.sessionStore.Get(cmd.OrderID())
	if err != nil {
		return err
	}

	_, err = o.Cart().AddItem(cmd.ItemName(), cmd.UnitPrice(), cmd.Quantity())
	return err
}
