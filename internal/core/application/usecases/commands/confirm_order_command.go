package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/guard"
)

var (
	ErrConfirmOrderCommandIsNotConstructed = errors.New(
		"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
	)
	ErrPaymentMethodIsRequired = errors.New("payment method is required")
)

// ConfirmOrderCommand represents a request to settle and finalize an order
// session: re-validate the cart, charge the total, and persist the resulting
// order record.
//
// Example:
//
//	cmd, err := NewConfirmOrderCommand(sessionID, services.MethodCreditCard, details)
//	if err != nil {
//	    return fmt.Errorf("invalid confirmation data: %w", err)
//	}
//
//	handler := NewConfirmOrderCommandHandler(sessionStore, payments, uowFactory)
//	confirmation, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("confirmation failed: %w", err)
//	}
//	fmt.Printf("Order %s confirmed, arrives in %s", confirmation.OrderID, confirmation.EstimatedDelivery)
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	method  services.Method
	details services.PaymentDetails

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to confirm the given order session.
// The payment method must be named; whether it is supported and whether the
// details pass the method's shape check is decided by the payment facade, not
// here.
func NewConfirmOrderCommand(
	orderID kernel.UUID,
	method services.Method,
	details services.PaymentDetails,
) (ConfirmOrderCommand, error) {
	command := ConfirmOrderCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setMethod(method),
	); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// OrderID returns the order session identifier.
func (c ConfirmOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Method returns the chosen payment method.
func (c ConfirmOrderCommand) Method() services.Method {
	return c.method
}

// Details returns the method-specific payment details.
func (c ConfirmOrderCommand) Details() services.PaymentDetails {
	return c.details
}

func (c *ConfirmOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmOrderCommand) setMethod(method services.Method) error {
	if method == "" {
		return ErrPaymentMethodIsRequired
	}

	c.method = method
	return nil
}
