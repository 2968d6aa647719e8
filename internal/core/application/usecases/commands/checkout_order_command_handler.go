package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// CheckoutOrderCommandHandler validates a session and produces its checkout
// snapshot. Failures here (empty cart, unavailable item, missing address)
// surface before any payment details are collected.
type CheckoutOrderCommandHandler struct {
	sessionStore ports.SessionStore
}

// NewCheckoutOrderCommandHandler creates a handler for order checkouts.
func NewCheckoutOrderCommandHandler(sessionStore ports.SessionStore) CheckoutOrderCommandHandler {
	return CheckoutOrderCommandHandler{
		sessionStore: sessionStore,
	}
}

// Handle processes the checkout order command.
// Runs order validation first, then takes the checkout snapshot. The session
// stays live afterwards; the cart can still change and checkout can repeat.
func (h *CheckoutOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CheckoutOrderCommand,
) (order.CheckoutSummary, error) {
	if err := cmd.Validate(); err != nil {
		return order.CheckoutSummary{}, err
	}

	o, err := h.sessionStore.Get(cmd.OrderID())
	if err != nil {
		return order.CheckoutSummary{}, err
	}

	if err = o.ValidateOrder(); err != nil {
		return order.CheckoutSummary{}, err
	}

	return o.ProceedToCheckout()
}
