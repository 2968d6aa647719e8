package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/profile"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

type MockSessionStore struct{ mock.Mock }

func (m *MockSessionStore) Add(o *order.Order) error {
	args := m.Called(o)
	return args.Error(0)
}

func (m *MockSessionStore) Get(id kernel.UUID) (*order.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockSessionStore) Remove(id kernel.UUID) {
	m.Called(id)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Add(ctx context.Context, record order.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockHistoryRepository) Update(ctx context.Context, record order.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockHistoryRepository) Get(_ context.Context, _ kernel.UUID) (order.Record, error) {
	return order.Record{}, errors.New("not implemented in mock")
}

func (m *MockHistoryRepository) GetAllUndelivered(ctx context.Context) ([]order.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Record), args.Error(1)
}

type MockProfileRepository struct{ mock.Mock }

func (m *MockProfileRepository) Save(ctx context.Context, p *profile.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileRepository) Get(ctx context.Context, customerID string) (*profile.Profile, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Profile), args.Error(1)
}

type MockHistoryUoW struct{ mock.Mock }

func (m *MockHistoryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockHistoryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockHistoryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockHistoryUoW) OrderHistoryRepository() ports.OrderHistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderHistoryRepository)
}

type MockHistoryUoWFactory struct{ mock.Mock }

func (m *MockHistoryUoWFactory) Create() commands.HistoryUoW {
	args := m.Called()
	return args.Get(0).(commands.HistoryUoW)
}

type MockProfileUoW struct{ mock.Mock }

func (m *MockProfileUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProfileUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProfileUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProfileUoW) ProfileRepository() ports.ProfileRepository {
	args := m.Called()
	return args.Get(0).(ports.ProfileRepository)
}

type MockProfileUoWFactory struct{ mock.Mock }

func (m *MockProfileUoWFactory) Create() commands.ProfileUoW {
	args := m.Called()
	return args.Get(0).(commands.ProfileUoW)
}

// stubCatalog answers availability from a fixed set.
type stubCatalog struct{ available map[string]bool }

func (s stubCatalog) IsAvailable(itemName string) bool { return s.available[itemName] }

func allAvailableCatalog() stubCatalog {
	return stubCatalog{available: map[string]bool{"Margherita": true, "Pepperoni": true}}
}

// stubAddress provides a fixed delivery address.
type stubAddress struct{ address string }

func (s stubAddress) DeliveryAddress() string { return s.address }

// stubGateway approves or declines every charge.
type stubGateway struct {
	approve bool
	reason  string
}

func (g stubGateway) Charge(
	_ context.Context,
	_ services.Method,
	_ services.PaymentDetails,
	_ kernel.Money,
) (services.ChargeResult, error) {
	if !g.approve {
		return services.ChargeResult{Approved: false, DeclineReason: g.reason}, nil
	}
	return services.ChargeResult{Approved: true, TransactionID: "txn-test"}, nil
}

// newTestSession builds a live order session with the given cart items.
func newTestSession(t *testing.T, address string, items map[string]int) *order.Order {
	t.Helper()

	sessionCart := cart.NewCart()
	for name, quantity := range items {
		price, err := kernel.MoneyFromFloat(10)
		require.NoError(t, err)
		_, err = sessionCart.AddItem(name, price, quantity)
		require.NoError(t, err)
	}

	o, err := order.NewOrder(kernel.NewUUID(), "alice", sessionCart, stubAddress{address: address}, allAvailableCatalog())
	require.NoError(t, err)
	return o
}
