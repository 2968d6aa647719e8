// Package menu models the restaurant catalog the ordering workflow validates
// carts against. The menu is the catalog-availability collaborator of an order
// session: it only answers whether a named item is currently offered.
package menu

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrMenuIsNotConstructed is returned when a RestaurantMenu was not created
// through the NewRestaurantMenu factory method.
var ErrMenuIsNotConstructed = errors.New("RestaurantMenu must be created via NewRestaurantMenu constructor")

// RestaurantMenu is the set of items a restaurant currently offers.
// Lookups are by exact item name. The menu is immutable once constructed;
// a changed offering is represented by constructing a new menu.
type RestaurantMenu struct {
	restaurantName string
	items          []string
	available      map[string]bool

	guard guard.ConstructorGuard
}

// NewRestaurantMenu creates a menu for the named restaurant offering the given
// items. Blank item names are rejected; duplicate names collapse to one entry.
func NewRestaurantMenu(restaurantName string, availableItems []string) (*RestaurantMenu, error) {
	if restaurantName == "" {
		return nil, errs.NewValueIsRequiredError("restaurant name")
	}

	m := &RestaurantMenu{
		restaurantName: restaurantName,
		available:      make(map[string]bool, len(availableItems)),
		guard:          guard.NewConstructorGuard(),
	}

	for _, item := range availableItems {
		if item == "" {
			return nil, errs.NewValueIsRequiredError("menu item name")
		}
		if m.available[item] {
			continue
		}
		m.available[item] = true
		m.items = append(m.items, item)
	}

	return m, nil
}

// Validate ensures the menu was properly constructed through NewRestaurantMenu.
func (m *RestaurantMenu) Validate() error {
	if m == nil {
		return ErrMenuIsNotConstructed
	}
	return m.guard.Validate(ErrMenuIsNotConstructed)
}

// RestaurantName returns the name of the restaurant this menu belongs to.
func (m *RestaurantMenu) RestaurantName() string {
	return m.restaurantName
}

// IsAvailable reports whether the named item is currently offered.
func (m *RestaurantMenu) IsAvailable(itemName string) bool {
	return m.available[itemName]
}

// Items returns the offered item names in menu order.
func (m *RestaurantMenu) Items() []string {
	items := make([]string, len(m.items))
	copy(items, m.items)
	return items
}
