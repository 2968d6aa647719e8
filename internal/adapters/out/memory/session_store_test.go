package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordering/internal/core/domain/model/cart"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

type fixedAddress struct{ address string }

func (a fixedAddress) DeliveryAddress() string { return a.address }

type allAvailable struct{}

func (allAvailable) IsAvailable(string) bool { return true }

func newSession(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(),
		"customer-1",
		cart.NewCart(),
		fixedAddress{address: "1 Main Street"},
		allAvailable{},
	)
	require.NoError(t, err)
	return o
}

func Test_SessionStore_Add(t *testing.T) {
	t.Run("should store session", func(t *testing.T) {
		// Arrange
		store := NewSessionStore()
		o := newSession(t)

		// Act
		err := store.Add(o)

		// Assert
		require.NoError(t, err)
		got, err := store.Get(o.ID())
		require.NoError(t, err)
		assert.Same(t, o, got)
	})

	t.Run("should return error when session is nil", func(t *testing.T) {
		// Arrange
		store := NewSessionStore()

		// Act
		err := store.Add(nil)

		// Assert
		assert.Error(t, err)
	})

	t.Run("should return error when session id already exists", func(t *testing.T) {
		// Arrange
		store := NewSessionStore()
		o := newSession(t)
		require.NoError(t, store.Add(o))

		// Act
		err := store.Add(o)

		// Assert
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func Test_SessionStore_Get(t *testing.T) {
	t.Run("should return object not found for unknown id", func(t *testing.T) {
		// Arrange
		store := NewSessionStore()

		// Act
		_, err := store.Get(kernel.NewUUID())

		// Assert
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should return error for unconstructed id", func(t *testing.T) {
		// Arrange
		store := NewSessionStore()

		// Act
		_, err := store.Get(kernel.UUID{})

		// Assert
		assert.Error(t, err)
	})
}

func Test_SessionStore_Remove(t *testing.T) {
	t.Run("should remove stored session", func(t *testing.T) {
		// Arrange
		store := NewSessionStore()
		o := newSession(t)
		require.NoError(t, store.Add(o))

		// Act
		store.Remove(o.ID())

		// Assert
		_, err := store.Get(o.ID())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should be idempotent for unknown id", func(t *testing.T) {
		// Arrange
		store := NewSessionStore()

		// Act
		store.Remove(kernel.NewUUID())
	})
}
