package commands

import (
	"context"

	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// StartOrderCommandHandler opens order sessions. It loads (or creates) the
// customer's profile so the session can later resolve the delivery address,
// builds an empty cart, and registers the new session in the session store.
//
// Example:
//
//	handler := NewStartOrderCommandHandler(sessionStore, menu, notifier, uowFactory)
//	cmd, _ := NewStartOrderCommand(kernel.NewUUID(), "alice")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order session failed: %w", err)
//	}
type StartOrderCommandHandler struct {
	sessionStore ports.SessionStore
	catalog      order.CatalogAvailability
	observer     order.StatusObserver
	uowFactory   ProfileUoWFactory
}

// NewStartOrderCommandHandler creates a handler for opening order sessions.
// The observer is subscribed to every new session and receives all of its
// customer-facing status changes.
func NewStartOrderCommandHandler(
	sessionStore ports.SessionStore,
	catalog order.CatalogAvailability,
	observer order.StatusObserver,
	uowFactory ProfileUoWFactory,
) StartOrderCommandHandler {
	return StartOrderCommandHandler{
		sessionStore: sessionStore,
		catalog:      catalog,
		observer:     observer,
		uowFactory:   uowFactory,
	}
}

// Handle processes the start order command.
// The customer's profile is loaded inside a transaction, created on first
// contact, and becomes the session's delivery address provider. The session
// starts with an empty cart in the Pending status.
func (h *StartOrderCommandHandler) Handle(ctx context.Context, cmd StartOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerProfile, err := loadOrCreateProfile(ctx, uow.ProfileRepository(), cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cart.NewCart(), customerProfile, h.catalog)
	if err != nil {
		return err
	}

	if h.observer != nil {
		o.Subscribe(h.observer)
	}

	return h.sessionStore.Add(o)
}
