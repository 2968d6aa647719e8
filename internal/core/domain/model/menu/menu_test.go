package menu_test

import (
	"testing"

	"ordering/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRestaurantMenu(t *testing.T) {
	t.Run("should create menu with items", func(t *testing.T) {
		m, err := menu.NewRestaurantMenu("Mama Mia", []string{"Burger", "Pizza", "Salad"})

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "Mama Mia", m.RestaurantName())
		assert.Equal(t, []string{"Burger", "Pizza", "Salad"}, m.Items())
	})

	t.Run("should create empty menu", func(t *testing.T) {
		m, err := menu.NewRestaurantMenu("Mama Mia", nil)

		require.NoError(t, err)
		assert.Empty(t, m.Items())
	})

	t.Run("should collapse duplicate items", func(t *testing.T) {
		m, err := menu.NewRestaurantMenu("Mama Mia", []string{"Pizza", "Pizza"})

		require.NoError(t, err)
		assert.Equal(t, []string{"Pizza"}, m.Items())
	})

	t.Run("should reject blank restaurant name", func(t *testing.T) {
		_, err := menu.NewRestaurantMenu("", []string{"Pizza"})

		require.Error(t, err)
	})

	t.Run("should reject blank item name", func(t *testing.T) {
		_, err := menu.NewRestaurantMenu("Mama Mia", []string{"Pizza", ""})

		require.Error(t, err)
	})
}

func TestRestaurantMenu_IsAvailable(t *testing.T) {
	m, err := menu.NewRestaurantMenu("Mama Mia", []string{"Burger", "Pizza", "Salad"})
	require.NoError(t, err)

	t.Run("should find offered item", func(t *testing.T) {
		assert.True(t, m.IsAvailable("Pizza"))
	})

	t.Run("should reject unknown item", func(t *testing.T) {
		assert.False(t, m.IsAvailable("Pasta"))
	})

	t.Run("lookup is case sensitive", func(t *testing.T) {
		assert.False(t, m.IsAvailable("pizza"))
	})
}

func TestRestaurantMenu_Validate(t *testing.T) {
	t.Run("should fail for nil menu", func(t *testing.T) {
		var m *menu.RestaurantMenu

		require.Error(t, m.Validate())
	})
}
