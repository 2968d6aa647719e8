package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// EstimatedDelivery is the fixed delivery estimate attached to every
// confirmed order.
const EstimatedDelivery = "45 minutes"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrCustomerIDIsRequired is returned when an order is created without a customer.
	ErrCustomerIDIsRequired = errors.New("customer id is required")

	// ErrEmptyCart is the validation failure for an order whose cart holds no items.
	// The message is customer-facing and part of the validation contract.
	ErrEmptyCart = errors.New("Cart is empty")

	// ErrNotValidated is returned when checkout is attempted before a
	// successful validation of the order.
	ErrNotValidated = errors.New("order must be validated before checkout")

	// ErrAddressRequired is the validation failure for a blank delivery address
	// at checkout time.
	ErrAddressRequired = errs.NewValueIsRequiredError("delivery address")
)

// ItemUnavailableError is the validation failure for a cart line that the
// restaurant catalog does not currently offer. Validation reports the first
// unavailable item in cart insertion order.
type ItemUnavailableError struct {
	ItemName string
}

func (e *ItemUnavailableError) Error() string {
	return fmt.Sprintf("%s is not available", e.ItemName)
}

// PaymentFailedError reports a payment that was not approved during order
// confirmation. The customer-facing message is always exactly "Payment failed";
// the underlying decline or gateway failure is available via Unwrap.
type PaymentFailedError struct {
	Cause error
}

func (e *PaymentFailedError) Error() string {
	return "Payment failed"
}

func (e *PaymentFailedError) Unwrap() error {
	return e.Cause
}

// CatalogAvailability answers whether a named item is currently offered by the
// restaurant. The restaurant menu implements this collaborator interface.
type CatalogAvailability interface {
	IsAvailable(itemName string) bool
}

// DeliveryAddressProvider supplies the delivery address chosen for the order.
// The returned address may be blank; checkout treats that as a validation
// failure. The customer profile implements this collaborator interface.
type DeliveryAddressProvider interface {
	DeliveryAddress() string
}

// StatusObserver receives customer-facing status change notifications.
// Observers are invoked synchronously, once per status change, in registration
// order, with the exact new status string. The contract is fire-and-forget:
// observers cannot veto or acknowledge a change.
type StatusObserver interface {
	OrderStatusChanged(orderID kernel.UUID, status string)
}

// PaymentService settles a monetary amount on behalf of the order.
// The payment-processing facade implements this interface; a non-nil error
// means the payment was not approved and the order must not be confirmed.
type PaymentService interface {
	Pay(ctx context.Context, amount kernel.Money) (PaymentReceipt, error)
}

// PaymentReceipt is the proof of an approved payment.
type PaymentReceipt struct {
	TransactionID string
}

// CheckoutSummary is the immutable snapshot produced by ProceedToCheckout:
// the cart contents, the derived pricing, and the delivery address at the
// moment of checkout.
type CheckoutSummary struct {
	Items           []cart.ItemView
	Pricing         cart.PricingSummary
	DeliveryAddress string
}

// Confirmation is the result of a successfully confirmed order: a freshly
// generated permanent order number, the payment transaction id, and the fixed
// delivery estimate.
type Confirmation struct {
	OrderID           kernel.UUID
	TransactionID     string
	EstimatedDelivery string
}

// Order orchestrates one checkout session: it validates the borrowed cart
// against the catalog, produces the checkout snapshot, settles payment, and
// tracks both the internal stage machine and the customer-facing status label.
//
// Order follows these invariants:
//   - Exactly one cart, one address provider, and one catalog, all borrowed;
//     the caller owns their lifetimes.
//   - Stage transitions follow the rules defined on Stage.
//   - A declined payment commits no state: the cart is untouched, the stage
//     is unchanged, and confirmation can be retried.
//   - Every UpdateStatus call notifies all observers exactly once.
//
// One Order instance serves one in-flight workflow; callers must serialize
// access per order.
type Order struct {
	// id identifies the order session
	id kernel.UUID

	// customerID names the customer who owns the session
	customerID string

	// cart is the borrowed shopping cart for this session
	cart *cart.Cart

	// address supplies the delivery address at checkout time
	address DeliveryAddressProvider

	// catalog answers item availability during validation
	catalog CatalogAvailability

	// stage is the internal workflow state
	stage Stage

	// status is the free-text customer-facing label
	status string

	// observers receive status change notifications in registration order
	observers []StatusObserver

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates an order session over a borrowed cart, address provider,
// and catalog. The session starts in the Pending stage with the customer-facing
// status "Pending".
func NewOrder(
	id kernel.UUID,
	customerID string,
	sessionCart *cart.Cart,
	address DeliveryAddressProvider,
	catalog CatalogAvailability,
) (*Order, error) {
	o := &Order{
		stage:         Pending,
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setCart(sessionCart),
		o.setAddress(address),
		o.setCatalog(catalog),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// ID returns the order session identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who owns the session.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Cart returns the borrowed cart of the session.
// The order does not own the cart's lifetime; mutations through the returned
// reference are visible to subsequent validation and pricing.
func (o *Order) Cart() *cart.Cart {
	return o.cart
}

// Stage returns the current internal lifecycle stage.
func (o *Order) Stage() Stage {
	return o.stage
}

// Status returns the current customer-facing status label.
func (o *Order) Status() string {
	return o.status
}

// Subscribe registers an observer for status change notifications.
// Observers are notified synchronously in registration order.
func (o *Order) Subscribe(observer StatusObserver) {
	if observer == nil {
		return
	}
	o.observers = append(o.observers, observer)
}

// UpdateStatus sets the customer-facing status label and notifies every
// registered observer once with the exact new value. The label is free text
// and independent of the internal stage machine.
func (o *Order) UpdateStatus(newStatus string) {
	o.status = newStatus
	for _, observer := range o.observers {
		observer.OrderStatusChanged(o.id, newStatus)
	}
}

// ValidateOrder checks that the session can progress toward confirmation:
// the cart must hold at least one item and every cart line must be available
// in the catalog. On failure the first problem found is returned, naming the
// first unavailable item in cart order. On success the stage advances to
// Validated.
func (o *Order) ValidateOrder() error {
	newStage, err := o.stage.MarkValidated()
	if err != nil {
		return err
	}

	if o.cart.IsEmpty() {
		return ErrEmptyCart
	}

	for _, name := range o.cart.ItemNames() {
		if !o.catalog.IsAvailable(name) {
			return &ItemUnavailableError{ItemName: name}
		}
	}

	o.stage = newStage
	return nil
}

// ProceedToCheckout produces the immutable checkout snapshot: current cart
// view, derived pricing, and the delivery address. Requires a prior successful
// ValidateOrder; a blank delivery address is a validation failure, not a crash.
// On success the stage advances to CheckedOut.
func (o *Order) ProceedToCheckout() (CheckoutSummary, error) {
	newStage, err := o.stage.MarkCheckedOut()
	if err != nil {
		return CheckoutSummary{}, ErrNotValidated
	}

	address := o.address.DeliveryAddress()
	if strings.TrimSpace(address) == "" {
		return CheckoutSummary{}, ErrAddressRequired
	}

	o.stage = newStage
	return CheckoutSummary{
		Items:           o.cart.Items(),
		Pricing:         o.cart.Totals(),
		DeliveryAddress: address,
	}, nil
}

// Confirm settles the order. It re-runs ValidateOrder and returns the
// validation failure without contacting payment if the session is no longer
// valid. Otherwise the current cart total is paid through the given payment
// service.
//
// On approval the stage advances to Confirmed and the returned Confirmation
// carries a freshly generated permanent order id, the payment transaction id,
// and the fixed delivery estimate. On decline a PaymentFailedError is returned
// and the cart is unchanged; the embedded re-validation has moved the stage
// back to Validated, so Confirm can be retried from there. The
// customer-facing status is not changed
// automatically; callers set it explicitly via UpdateStatus after success.
func (o *Order) Confirm(ctx context.Context, payment PaymentService) (Confirmation, error) {
	if err := o.ValidateOrder(); err != nil {
		return Confirmation{}, err
	}

	total := o.cart.Totals().Total
	receipt, err := payment.Pay(ctx, total)
	if err != nil {
		return Confirmation{}, &PaymentFailedError{Cause: err}
	}

	newStage, err := o.stage.MarkConfirmed()
	if err != nil {
		return Confirmation{}, err
	}
	o.stage = newStage

	return Confirmation{
		OrderID:           kernel.NewUUID(),
		TransactionID:     receipt.TransactionID,
		EstimatedDelivery: EstimatedDelivery,
	}, nil
}

// Abandon marks the session as permanently failed.
// Allowed from any non-terminal stage.
func (o *Order) Abandon() error {
	newStage, err := o.stage.MarkFailed()
	if err != nil {
		return err
	}

	o.stage = newStage
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDIsRequired
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setCart(sessionCart *cart.Cart) error {
	if err := sessionCart.Validate(); err != nil {
		return err
	}
	o.cart = sessionCart
	return nil
}

func (o *Order) setAddress(address DeliveryAddressProvider) error {
	if address == nil {
		return errs.NewValueIsRequiredError("delivery address provider")
	}
	o.address = address
	return nil
}

func (o *Order) setCatalog(catalog CatalogAvailability) error {
	if catalog == nil {
		return errs.NewValueIsRequiredError("catalog availability")
	}
	o.catalog = catalog
	return nil
}
