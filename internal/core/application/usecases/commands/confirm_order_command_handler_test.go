package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"
)

func validCardDetails() services.PaymentDetails {
	return services.PaymentDetails{
		CardNumber: "4242424242424242",
		ExpiryDate: "12/30",
		CVV:        "123",
	}
}

func approvingPayments(t *testing.T) services.PaymentProcessing {
	t.Helper()
	payments, err := services.NewPaymentProcessing(stubGateway{approve: true})
	require.NoError(t, err)
	return payments
}

func TestConfirmOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := newTestSession(t, "1 Main Street", map[string]int{"Margherita": 2})
	cmd, _ := commands.NewConfirmOrderCommand(o.ID(), services.MethodCreditCard, validCardDetails())

	repo := new(MockHistoryRepository)
	uow := new(MockHistoryUoW)
	store := new(MockSessionStore)
	mock.InOrder(
		store.On("Get", o.ID()).Return(o, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderHistoryRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("order.Record")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		store.On("Remove", o.ID()).Return().Once(),
		// deferred rollback fires after the session is removed
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockHistoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(store, approvingPayments(t), factory)
	confirmation, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.NoError(t, confirmation.OrderID.Validate())
	assert.False(t, confirmation.OrderID.IsEqual(o.ID()))
	assert.Equal(t, "txn-test", confirmation.TransactionID)
	assert.Equal(t, order.EstimatedDelivery, confirmation.EstimatedDelivery)
	assert.Equal(t, order.StatusConfirmed, o.Status())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	store.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_RecordCarriesCheckoutSnapshot(t *testing.T) {
	ctx := t.Context()
	o := newTestSession(t, "1 Main Street", map[string]int{"Margherita": 2})
	cmd, _ := commands.NewConfirmOrderCommand(o.ID(), services.MethodCreditCard, validCardDetails())

	var saved order.Record
	repo := new(MockHistoryRepository)
	repo.On("Add", mock.Anything, mock.AnythingOfType("order.Record")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(order.Record) }).
		Return(nil).Once()

	uow := new(MockHistoryUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderHistoryRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	store := new(MockSessionStore)
	store.On("Get", o.ID()).Return(o, nil).Once()
	store.On("Remove", o.ID()).Return().Once()

	factory := new(MockHistoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(store, approvingPayments(t), factory)
	confirmation, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// 2 x 10.00 subtotal, 10% tax, 5.00 delivery fee
	assert.True(t, confirmation.OrderID.IsEqual(saved.ID))
	assert.Equal(t, "alice", saved.CustomerID)
	assert.Equal(t, "1 Main Street", saved.DeliveryAddress)
	assert.Equal(t, "27.00", saved.Total.String())
	assert.Equal(t, order.StatusConfirmed, saved.Status)
	repo.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	o := newTestSession(t, "1 Main Street", nil)
	cmd, _ := commands.NewConfirmOrderCommand(o.ID(), services.MethodCreditCard, validCardDetails())

	store := new(MockSessionStore)
	store.On("Get", o.ID()).Return(o, nil).Once()

	h := commands.NewConfirmOrderCommandHandler(store, approvingPayments(t), new(MockHistoryUoWFactory))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrEmptyCart)
}

func TestConfirmOrderCommandHandler_Handle_UnsupportedMethod(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewConfirmOrderCommand(id, services.Method("bitcoin"), services.PaymentDetails{})

	store := new(MockSessionStore) // must not be touched

	h := commands.NewConfirmOrderCommandHandler(store, approvingPayments(t), new(MockHistoryUoWFactory))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrUnsupportedMethod)
	store.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_InvalidCardDetails(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewConfirmOrderCommand(id, services.MethodCreditCard, services.PaymentDetails{CVV: "12"})

	h := commands.NewConfirmOrderCommandHandler(new(MockSessionStore), approvingPayments(t), new(MockHistoryUoWFactory))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrInvalidCardDetails)
}

func TestConfirmOrderCommandHandler_Handle_DeclineLeavesSessionRetryable(t *testing.T) {
	ctx := t.Context()
	o := newTestSession(t, "1 Main Street", map[string]int{"Margherita": 1})
	cmd, _ := commands.NewConfirmOrderCommand(o.ID(), services.MethodCreditCard, validCardDetails())

	payments, err := services.NewPaymentProcessing(stubGateway{approve: false, reason: "card declined"})
	require.NoError(t, err)

	store := new(MockSessionStore)
	store.On("Get", o.ID()).Return(o, nil).Twice()

	h := commands.NewConfirmOrderCommandHandler(store, payments, new(MockHistoryUoWFactory))

	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	var failed *order.PaymentFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, "Payment failed", failed.Error())
	assert.Equal(t, 1, o.Cart().Len())

	// same session can be confirmed again
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorAs(t, err, &failed)
	store.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_CommitErrorDropsSession(t *testing.T) {
	ctx := t.Context()
	o := newTestSession(t, "1 Main Street", map[string]int{"Margherita": 1})
	cmd, _ := commands.NewConfirmOrderCommand(o.ID(), services.MethodCreditCard, validCardDetails())

	repo := new(MockHistoryRepository)
	uow := new(MockHistoryUoW)
	store := new(MockSessionStore)
	mock.InOrder(
		store.On("Get", o.ID()).Return(o, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderHistoryRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("order.Record")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(assert.AnError).Once(),
		// the charge already settled, so the wedged session must be dropped
		store.On("Remove", o.ID()).Return().Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockHistoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmOrderCommandHandler(store, approvingPayments(t), factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, assert.AnError)
	uow.AssertExpectations(t)
	store.AssertExpectations(t)

	// a retry sees an unknown session instead of a permanently wedged one
	store.On("Get", o.ID()).Return(nil, errs.NewObjectNotFoundError("id", o.ID())).Once()
	_, err = h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
