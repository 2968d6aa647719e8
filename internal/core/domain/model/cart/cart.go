package cart

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrCartIsNotConstructed is returned when a Cart instance was not created
// through the NewCart factory method.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

// lineItem is one named product inside the cart. The name acts as the unique
// key; the cart merges quantities instead of creating duplicate lines.
type lineItem struct {
	name      string
	unitPrice kernel.Money
	quantity  int
}

// subtotal returns unit price multiplied by quantity for this line.
func (i *lineItem) subtotal() kernel.Money {
	return i.unitPrice.MulInt(i.quantity)
}

// ItemView is a read-only projection of one cart line. Views are detached
// copies: mutating the cart after taking a view does not change the view,
// and views give no access to the cart's internal state.
type ItemView struct {
	Name     string
	Quantity int
	Subtotal kernel.Money
}

// Cart holds the line items of one order session.
//
// Invariants:
//   - At most one line item per name; AddItem merges quantities.
//   - Quantities are always positive and unit prices non-negative;
//     mutating operations reject input that would break this.
//   - Line items keep insertion order for deterministic views and validation.
//
// Cart is not safe for concurrent use; each order session owns exactly one
// cart and callers serialize access per session.
type Cart struct {
	items []*lineItem

	guard guard.ConstructorGuard
}

// NewCart creates an empty cart for a new order session.
func NewCart() *Cart {
	return &Cart{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the Cart instance was properly constructed through NewCart.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// AddItem adds quantity units of the named item at the given unit price.
// If the name is already present the quantity is added to the existing line;
// otherwise a new line is appended. Returns the resulting quantity of the line.
//
// Rejects blank names, unconstructed prices, and quantities that are zero or
// negative.
func (c *Cart) AddItem(name string, unitPrice kernel.Money, quantity int) (int, error) {
	if name == "" {
		return 0, errs.NewValueIsRequiredError("item name")
	}
	if err := unitPrice.Validate(); err != nil {
		return 0, err
	}
	if quantity <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	if item := c.find(name); item != nil {
		item.quantity += quantity
		return item.quantity, nil
	}

	c.items = append(c.items, &lineItem{
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
	})
	return quantity, nil
}

// RemoveItem removes the named line item if present.
// Removal is idempotent: removing an absent item is a no-op, not an error.
func (c *Cart) RemoveItem(name string) {
	for i, item := range c.items {
		if item.name == name {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity replaces the quantity of an existing line item.
// Returns an object-not-found error if the item is absent and rejects
// quantities that are zero or negative.
func (c *Cart) UpdateQuantity(name string, newQuantity int) error {
	if newQuantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", newQuantity),
		)
	}

	item := c.find(name)
	if item == nil {
		return errs.NewObjectNotFoundError("cart item", name)
	}

	item.quantity = newQuantity
	return nil
}

// IsEmpty reports whether the cart holds no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Len returns the number of distinct line items.
func (c *Cart) Len() int {
	return len(c.items)
}

// ItemNames returns the item names in insertion order.
// Order validation walks this list so availability failures always name the
// first offending item deterministically.
func (c *Cart) ItemNames() []string {
	names := make([]string, 0, len(c.items))
	for _, item := range c.items {
		names = append(names, item.name)
	}
	return names
}

// Items returns a read-only snapshot of all lines in insertion order.
func (c *Cart) Items() []ItemView {
	views := make([]ItemView, 0, len(c.items))
	for _, item := range c.items {
		views = append(views, ItemView{
			Name:     item.name,
			Quantity: item.quantity,
			Subtotal: item.subtotal(),
		})
	}
	return views
}

func (c *Cart) find(name string) *lineItem {
	for _, item := range c.items {
		if item.name == name {
			return item
		}
	}
	return nil
}
