package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// ConfirmOrderCommandHandler drives the final step of the order workflow:
// validate the session, snapshot the checkout, settle the payment, persist
// the order record, and retire the session.
//
// Payment input is validated before the order is touched so an unsupported
// method or malformed card details surface as their own errors rather than a
// generic payment failure. A declined or faulted payment leaves the session
// intact and retryable.
//
// Example:
//
//	handler := NewConfirmOrderCommandHandler(sessionStore, payments, uowFactory)
//	cmd, _ := NewConfirmOrderCommand(sessionID, services.MethodCreditCard, details)
//
//	confirmation, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order confirmation failed: %w", err)
//	}
type ConfirmOrderCommandHandler struct {
	sessionStore ports.SessionStore
	payments     services.PaymentProcessing
	uowFactory   HistoryUoWFactory
}

// NewConfirmOrderCommandHandler creates a handler for order confirmations.
// Requires a HistoryUoWFactory for transactional persistence of the record.
func NewConfirmOrderCommandHandler(
	sessionStore ports.SessionStore,
	payments services.PaymentProcessing,
	uowFactory HistoryUoWFactory,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		sessionStore: sessionStore,
		payments:     payments,
		uowFactory:   uowFactory,
	}
}

// Handle processes the confirm order command.
// On approval the confirmed record is written inside a transaction, the
// customer-facing status moves to Confirmed, and the session is removed from
// the store. Failures before the charge leave the session untouched and
// retryable; failures after the charge drop the session along with the error.
func (h *ConfirmOrderCommandHandler) Handle(
	ctx context.Context,
	cmd ConfirmOrderCommand,
) (order.Confirmation, error) {
	if err := cmd.Validate(); err != nil {
		return order.Confirmation{}, err
	}

	if err := h.payments.ValidateMethod(cmd.Method(), cmd.Details()); err != nil {
		return order.Confirmation{}, err
	}

	o, err := h.sessionStore.Get(cmd.OrderID())
	if err != nil {
		return order.Confirmation{}, err
	}

	if err = o.ValidateOrder(); err != nil {
		return order.Confirmation{}, err
	}

	summary, err := o.ProceedToCheckout()
	if err != nil {
		return order.Confirmation{}, err
	}

	confirmation, err := o.Confirm(ctx, h.payments.For(cmd.Method(), cmd.Details()))
	if err != nil {
		return order.Confirmation{}, err
	}

	// The charge has settled and the session's stage is terminal from here on.
	// Any failure to persist the record drops the session: a kept session
	// could never pass validation again, yet the customer was already charged.
	record, err := order.NewRecord(
		confirmation.OrderID,
		o.CustomerID(),
		summary.DeliveryAddress,
		summary.Pricing.Total,
		confirmation.TransactionID,
		confirmation.EstimatedDelivery,
		time.Now().UTC(),
	)
	if err != nil {
		h.sessionStore.Remove(o.ID())
		return order.Confirmation{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		h.sessionStore.Remove(o.ID())
		return order.Confirmation{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderHistoryRepository().Add(ctx, record); err != nil {
		h.sessionStore.Remove(o.ID())
		return order.Confirmation{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		h.sessionStore.Remove(o.ID())
		return order.Confirmation{}, err
	}

	o.UpdateStatus(order.StatusConfirmed)
	h.sessionStore.Remove(o.ID())

	return confirmation, nil
}
