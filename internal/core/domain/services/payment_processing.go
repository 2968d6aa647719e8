package services

import (
	"context"
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

const (
	// cardNumberLength and cvvLength are the exact lengths accepted for
	// credit card details. Exact, not ranges: 15- and 17-digit numbers and
	// 2- and 4-digit CVVs are all invalid.
	cardNumberLength = 16
	cvvLength        = 3
)

// Method identifies a supported payment method.
type Method string

const (
	// MethodCreditCard settles through a card, validated before gateway contact.
	MethodCreditCard Method = "credit_card"

	// MethodPayPal settles through PayPal; details are passed through unchecked.
	MethodPayPal Method = "paypal"
)

var (
	// ErrUnsupportedMethod is returned for payment methods outside the
	// supported set.
	ErrUnsupportedMethod = errors.New("invalid payment method")

	// ErrInvalidCardDetails is returned when credit card details fail the
	// shape check.
	ErrInvalidCardDetails = errors.New("invalid credit card details")

	// ErrPaymentDeclined classifies an explicit gateway refusal, as opposed
	// to a validation failure.
	ErrPaymentDeclined = errors.New("payment declined")

	// ErrGatewayFault classifies an infrastructure failure while contacting
	// the gateway. Faults are always caught at the facade and never abort the
	// surrounding order flow.
	ErrGatewayFault = errors.New("payment gateway fault")
)

// DeclinedError reports a gateway decline with the gateway's reason.
type DeclinedError struct {
	Reason string
}

func (e *DeclinedError) Error() string {
	return fmt.Sprintf("payment declined: %s", e.Reason)
}

func (e *DeclinedError) Unwrap() error {
	return ErrPaymentDeclined
}

// GatewayFaultError reports a failure or panic inside the gateway call,
// caught and wrapped so payment infrastructure errors surface as ordinary
// failure results.
type GatewayFaultError struct {
	Cause error
}

func (e *GatewayFaultError) Error() string {
	return fmt.Sprintf("payment gateway fault: %s", e.Cause)
}

func (e *GatewayFaultError) Unwrap() error {
	return ErrGatewayFault
}

// PaymentDetails is the method-specific payment payload. For card payments
// all three fields are opaque strings; for other methods they may be empty.
// A zero value is valid input and simply fails card validation.
type PaymentDetails struct {
	CardNumber string
	ExpiryDate string
	CVV        string
}

// ChargeResult is the gateway's answer to a charge attempt.
type ChargeResult struct {
	Approved      bool
	TransactionID string
	DeclineReason string
}

// PaymentGateway attempts to settle a monetary amount.
// A gateway never owns decline policy for non-positive amounts; that belongs
// to validation layers upstream. Implementations must be pluggable so the
// lifecycle and processing layers are testable without any network dependency.
type PaymentGateway interface {
	Charge(ctx context.Context, method Method, details PaymentDetails, amount kernel.Money) (ChargeResult, error)
}

// Receipt is the proof of a successfully processed payment.
type Receipt struct {
	TransactionID string
}

// PaymentProcessing validates payment-method input and delegates settlement
// to the configured gateway. All gateway call sites share this one facade so
// decline rules cannot diverge.
//
// Error taxonomy of Process:
//   - ErrUnsupportedMethod / ErrInvalidCardDetails: validation failures,
//     the gateway is never contacted
//   - ErrPaymentDeclined (via DeclinedError): explicit gateway refusal
//   - ErrGatewayFault (via GatewayFaultError): gateway error or panic,
//     caught at the facade
type PaymentProcessing struct {
	gateway PaymentGateway
}

// NewPaymentProcessing creates the payment facade over the given gateway.
func NewPaymentProcessing(gateway PaymentGateway) (PaymentProcessing, error) {
	if gateway == nil {
		return PaymentProcessing{}, errs.NewValueIsRequiredError("payment gateway")
	}
	return PaymentProcessing{gateway: gateway}, nil
}

// ValidateMethod checks that the payment method is supported and that its
// details pass the method-specific shape check. Missing or zero-value details
// are treated as invalid input, never as a crash.
func (p PaymentProcessing) ValidateMethod(method Method, details PaymentDetails) error {
	switch method {
	case MethodCreditCard:
		if !p.ValidateCard(details) {
			return ErrInvalidCardDetails
		}
		return nil
	case MethodPayPal:
		return nil
	default:
		return ErrUnsupportedMethod
	}
}

// ValidateCard reports whether credit card details have the accepted shape:
// a card number of exactly 16 characters and a CVV of exactly 3. The expiry
// date is accepted without checking; this is a deliberate simplification.
func (p PaymentProcessing) ValidateCard(details PaymentDetails) bool {
	return len(details.CardNumber) == cardNumberLength && len(details.CVV) == cvvLength
}

// Process validates the payment input and, on success, settles the amount
// through the gateway. Validation failures return before any gateway contact.
// Gateway errors and panics are caught and wrapped in GatewayFaultError so a
// gateway fault never aborts the surrounding order flow.
func (p PaymentProcessing) Process(ctx context.Context, amount kernel.Money, method Method, details PaymentDetails) (Receipt, error) {
	if err := p.ValidateMethod(method, details); err != nil {
		return Receipt{}, err
	}

	result, err := p.charge(ctx, method, details, amount)
	if err != nil {
		return Receipt{}, &GatewayFaultError{Cause: err}
	}

	if !result.Approved {
		return Receipt{}, &DeclinedError{Reason: result.DeclineReason}
	}

	return Receipt{TransactionID: result.TransactionID}, nil
}

// For adapts the facade to the order lifecycle's payment contract, binding
// the chosen method and details so the lifecycle only supplies the amount.
func (p PaymentProcessing) For(method Method, details PaymentDetails) order.PaymentService {
	return &boundPayment{processing: p, method: method, details: details}
}

// charge invokes the gateway with panic recovery: a panicking gateway is an
// infrastructure fault, not a reason to crash the order workflow.
func (p PaymentProcessing) charge(
	ctx context.Context,
	method Method,
	details PaymentDetails,
	amount kernel.Money,
) (result ChargeResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = ChargeResult{}
			err = fmt.Errorf("gateway panic: %v", r)
		}
	}()

	return p.gateway.Charge(ctx, method, details, amount)
}

// boundPayment is the order.PaymentService adapter produced by For.
type boundPayment struct {
	processing PaymentProcessing
	method     Method
	details    PaymentDetails
}

func (b *boundPayment) Pay(ctx context.Context, amount kernel.Money) (order.PaymentReceipt, error) {
	receipt, err := b.processing.Process(ctx, amount, b.method, b.details)
	if err != nil {
		return order.PaymentReceipt{}, err
	}
	return order.PaymentReceipt{TransactionID: receipt.TransactionID}, nil
}
