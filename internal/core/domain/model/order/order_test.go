package order_test

import (
	"context"
	"errors"
	"testing"

	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalog offers a fixed set of items.
type stubCatalog struct {
	available map[string]bool
}

func newStubCatalog(items ...string) *stubCatalog {
	available := make(map[string]bool, len(items))
	for _, item := range items {
		available[item] = true
	}
	return &stubCatalog{available: available}
}

func (c *stubCatalog) IsAvailable(itemName string) bool {
	return c.available[itemName]
}

// stubAddress supplies a fixed delivery address.
type stubAddress struct {
	address string
}

func (a *stubAddress) DeliveryAddress() string {
	return a.address
}

// recordingObserver captures status notifications in arrival order.
type recordingObserver struct {
	statuses []string
}

func (o *recordingObserver) OrderStatusChanged(_ kernel.UUID, status string) {
	o.statuses = append(o.statuses, status)
}

// stubPayment approves or declines every payment.
type stubPayment struct {
	receipt order.PaymentReceipt
	err     error
	calls   int
}

func (p *stubPayment) Pay(_ context.Context, _ kernel.Money) (order.PaymentReceipt, error) {
	p.calls++
	if p.err != nil {
		return order.PaymentReceipt{}, p.err
	}
	return p.receipt, nil
}

func newTestOrder(t *testing.T) (*order.Order, *cart.Cart) {
	t.Helper()
	c := cart.NewCart()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"alice@example.com",
		c,
		&stubAddress{address: "123 Main St"},
		newStubCatalog("Burger", "Pizza", "Salad"),
	)
	require.NoError(t, err)
	return o, c
}

func addItem(t *testing.T, c *cart.Cart, name, price string, qty int) {
	t.Helper()
	m, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	_, err = c.AddItem(name, m, qty)
	require.NoError(t, err)
}

func TestNewOrder(t *testing.T) {
	t.Run("should create valid order session", func(t *testing.T) {
		o, _ := newTestOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Stage())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, "alice@example.com", o.CustomerID())
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewOrder(invalidID, "alice@example.com", cart.NewCart(),
			&stubAddress{}, newStubCatalog())

		require.Error(t, err)
	})

	t.Run("should fail with empty customer id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "", cart.NewCart(),
			&stubAddress{}, newStubCatalog())

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrCustomerIDIsRequired)
	})

	t.Run("should fail with nil cart", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "alice@example.com", nil,
			&stubAddress{}, newStubCatalog())

		require.Error(t, err)
	})

	t.Run("should fail with nil collaborators", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "alice@example.com", cart.NewCart(), nil, nil)

		require.Error(t, err)
	})

	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_ValidateOrder(t *testing.T) {
	t.Run("should fail with empty cart", func(t *testing.T) {
		o, _ := newTestOrder(t)

		err := o.ValidateOrder()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrEmptyCart)
		assert.Equal(t, "Cart is empty", err.Error())
		assert.Equal(t, order.Pending, o.Stage())
	})

	t.Run("should fail naming the first unavailable item", func(t *testing.T) {
		o, c := newTestOrder(t)
		addItem(t, c, "Pasta", "15.99", 1)

		err := o.ValidateOrder()

		require.Error(t, err)
		assert.Equal(t, "Pasta is not available", err.Error())

		var unavailable *order.ItemUnavailableError
		require.ErrorAs(t, err, &unavailable)
		assert.Equal(t, "Pasta", unavailable.ItemName)
	})

	t.Run("should report first offender in cart order", func(t *testing.T) {
		o, c := newTestOrder(t)
		addItem(t, c, "Burger", "8.99", 1)
		addItem(t, c, "Sushi", "22.00", 1)
		addItem(t, c, "Pasta", "15.99", 1)

		err := o.ValidateOrder()

		require.Error(t, err)
		assert.Equal(t, "Sushi is not available", err.Error())
	})

	t.Run("should succeed with available items", func(t *testing.T) {
		o, c := newTestOrder(t)
		addItem(t, c, "Burger", "8.99", 2)

		err := o.ValidateOrder()

		require.NoError(t, err)
		assert.Equal(t, order.Validated, o.Stage())
	})

	t.Run("should allow re-validation after cart changes", func(t *testing.T) {
		o, c := newTestOrder(t)
		addItem(t, c, "Burger", "8.99", 1)
		require.NoError(t, o.ValidateOrder())

		addItem(t, c, "Pasta", "15.99", 1)

		err := o.ValidateOrder()
		require.Error(t, err)
		assert.Equal(t, "Pasta is not available", err.Error())
	})
}

func TestOrder_ProceedToCheckout(t *testing.T) {
	t.Run("should fail before validation", func(t *testing.T) {
		o, c := newTestOrder(t)
		addItem(t, c, "Burger", "8.99", 1)

		_, err := o.ProceedToCheckout()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrNotValidated)
	})

	t.Run("should fail with blank delivery address", func(t *testing.T) {
		c := cart.NewCart()
		o, err := order.NewOrder(kernel.NewUUID(), "alice@example.com", c,
			&stubAddress{address: "   "}, newStubCatalog("Burger"))
		require.NoError(t, err)
		addItem(t, c, "Burger", "8.99", 1)
		require.NoError(t, o.ValidateOrder())

		_, err = o.ProceedToCheckout()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrAddressRequired)
	})

	t.Run("should snapshot cart, pricing, and address", func(t *testing.T) {
		o, c := newTestOrder(t)
		addItem(t, c, "Burger", "8.99", 2)
		addItem(t, c, "Pizza", "12.99", 1)
		require.NoError(t, o.ValidateOrder())

		summary, err := o.ProceedToCheckout()

		require.NoError(t, err)
		assert.Equal(t, "123 Main St", summary.DeliveryAddress)
		require.Len(t, summary.Items, 2)
		assert.Equal(t, "Burger", summary.Items[0].Name)
		assert.Equal(t, "30.97", summary.Pricing.Subtotal.String())
		assert.Equal(t, order.CheckedOut, o.Stage())
	})

	t.Run("snapshot should not change with later cart mutations", func(t *testing.T) {
		o, c := newTestOrder(t)
		addItem(t, c, "Burger", "8.99", 1)
		require.NoError(t, o.ValidateOrder())

		summary, err := o.ProceedToCheckout()
		require.NoError(t, err)

		addItem(t, c, "Pizza", "12.99", 3)

		require.Len(t, summary.Items, 1)
		assert.Equal(t, "8.99", summary.Pricing.Subtotal.String())
	})
}

func TestOrder_Confirm(t *testing.T) {
	ctx := context.Background()

	t.Run("should confirm with approving payment", func(t *testing.T) {
		o, c := newTestOrder(t)
		addItem(t, c, "Pizza", "12.99", 1)
		payment := &stubPayment{receipt: order.PaymentReceipt{TransactionID: "tx-1"}}

		confirmation, err := o.Confirm(ctx, payment)

		require.NoError(t, err)
		require.NoError(t, confirmation.OrderID.Validate())
		assert.Equal(t, "tx-1", confirmation.TransactionID)
		assert.Equal(t, "45 minutes", confirmation.EstimatedDelivery)
		assert.Equal(t, order.Confirmed, o.Stage())
		assert.Equal(t, 1, payment.calls)
	})

	t.Run("should return validation failure without contacting payment", func(t *testing.T) {
		o, _ := newTestOrder(t)
		payment := &stubPayment{}

		_, err := o.Confirm(ctx, payment)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrEmptyCart)
		assert.Zero(t, payment.calls)
	})

	t.Run("should fail with declining payment and commit nothing", func(t *testing.T) {
		o, c := newTestOrder(t)
		addItem(t, c, "Pizza", "12.99", 1)
		decline := errors.New("card declined")
		payment := &stubPayment{err: decline}

		_, err := o.Confirm(ctx, payment)

		require.Error(t, err)
		assert.Equal(t, "Payment failed", err.Error())
		assert.ErrorIs(t, err, decline)
		assert.NotEqual(t, order.Confirmed, o.Stage())
		assert.Equal(t, 1, c.Len())
	})

	t.Run("should allow retry after a decline", func(t *testing.T) {
		o, c := newTestOrder(t)
		addItem(t, c, "Pizza", "12.99", 1)

		_, err := o.Confirm(ctx, &stubPayment{err: errors.New("card declined")})
		require.Error(t, err)

		confirmation, err := o.Confirm(ctx, &stubPayment{receipt: order.PaymentReceipt{TransactionID: "tx-2"}})

		require.NoError(t, err)
		assert.Equal(t, "tx-2", confirmation.TransactionID)
		assert.Equal(t, order.Confirmed, o.Stage())
	})

	t.Run("should reject confirming twice", func(t *testing.T) {
		o, c := newTestOrder(t)
		addItem(t, c, "Pizza", "12.99", 1)
		payment := &stubPayment{receipt: order.PaymentReceipt{TransactionID: "tx-1"}}
		_, err := o.Confirm(ctx, payment)
		require.NoError(t, err)

		_, err = o.Confirm(ctx, payment)

		require.Error(t, err)
	})
}

func TestOrder_UpdateStatus(t *testing.T) {
	t.Run("should set status and notify observers in registration order", func(t *testing.T) {
		o, _ := newTestOrder(t)
		first := &recordingObserver{}
		second := &recordingObserver{}
		o.Subscribe(first)
		o.Subscribe(second)

		o.UpdateStatus("Preparing")
		o.UpdateStatus("Out for Delivery")

		assert.Equal(t, "Out for Delivery", o.Status())
		assert.Equal(t, []string{"Preparing", "Out for Delivery"}, first.statuses)
		assert.Equal(t, []string{"Preparing", "Out for Delivery"}, second.statuses)
	})

	t.Run("should notify even when status value repeats", func(t *testing.T) {
		o, _ := newTestOrder(t)
		observer := &recordingObserver{}
		o.Subscribe(observer)

		o.UpdateStatus("Preparing")
		o.UpdateStatus("Preparing")

		assert.Equal(t, []string{"Preparing", "Preparing"}, observer.statuses)
	})

	t.Run("should accept arbitrary free-text status", func(t *testing.T) {
		o, _ := newTestOrder(t)

		o.UpdateStatus("Waiting on the kitchen")

		assert.Equal(t, "Waiting on the kitchen", o.Status())
	})

	t.Run("should ignore nil observers", func(t *testing.T) {
		o, _ := newTestOrder(t)

		o.Subscribe(nil)
		o.UpdateStatus("Preparing")

		assert.Equal(t, "Preparing", o.Status())
	})
}

func TestOrder_Abandon(t *testing.T) {
	t.Run("should fail the session", func(t *testing.T) {
		o, _ := newTestOrder(t)

		require.NoError(t, o.Abandon())

		assert.Equal(t, order.Failed, o.Stage())
	})

	t.Run("should reject abandoning a confirmed order", func(t *testing.T) {
		o, c := newTestOrder(t)
		addItem(t, c, "Pizza", "12.99", 1)
		_, err := o.Confirm(context.Background(), &stubPayment{receipt: order.PaymentReceipt{TransactionID: "tx"}})
		require.NoError(t, err)

		require.Error(t, o.Abandon())
	})
}
