// Package profile models the customer profile that accompanies an order
// session: labeled delivery addresses with a current selection, favorite
// restaurants, and dish ratings.
//
// The profile is the delivery-address collaborator of the order lifecycle;
// checkout reads whatever address is currently selected. Profiles are stored
// per customer in a dedicated repository and never share process-wide state.
package profile

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

const (
	// MinRating and MaxRating bound the dish rating scale.
	MinRating = 1
	MaxRating = 5
)

// ErrProfileIsNotConstructed is returned when a Profile was not created
// through one of the constructor functions.
var ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile or RestoreProfile")

// LabeledAddress is one named delivery address, e.g. {"home", "123 Main St"}.
type LabeledAddress struct {
	Label   string
	Address string
}

// Profile is the aggregate holding one customer's delivery addresses,
// favorite restaurants, and dish ratings.
//
// Invariants:
//   - Address labels are unique; re-adding a label overwrites its address.
//   - The current address selection always refers to an existing label, or to
//     nothing at all when the profile has no usable address.
//   - Favorites hold no duplicates and keep insertion order.
//   - Ratings are integers in [MinRating, MaxRating].
type Profile struct {
	customerID string

	labels    []string
	addresses map[string]string
	current   string

	favorites []string
	ratings   map[string]int

	guard guard.ConstructorGuard
}

// NewProfile creates an empty profile for the given customer.
func NewProfile(customerID string) (*Profile, error) {
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customer id")
	}

	return &Profile{
		customerID: customerID,
		addresses:  make(map[string]string),
		ratings:    make(map[string]int),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreProfile reconstructs a profile from persisted state.
// Used by repository implementations only.
func RestoreProfile(
	customerID string,
	addresses []LabeledAddress,
	currentLabel string,
	favorites []string,
	ratings map[string]int,
) (*Profile, error) {
	p, err := NewProfile(customerID)
	if err != nil {
		return nil, err
	}

	for _, a := range addresses {
		if err = p.AddAddress(a.Label, a.Address); err != nil {
			return nil, err
		}
	}
	if currentLabel != "" {
		// persisted state must be internally consistent; a switch at
		// runtime no-ops instead
		if _, ok := p.addresses[currentLabel]; !ok {
			return nil, errs.NewValueIsInvalidError("current label")
		}
		p.current = currentLabel
	} else {
		// persisted state may have no current address even though
		// addresses exist, e.g. after the current one was removed
		p.current = ""
	}
	for _, favorite := range favorites {
		p.AddFavorite(favorite)
	}
	for dish, rating := range ratings {
		if err = p.RateDish(dish, rating); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Validate ensures the profile was properly constructed.
func (p *Profile) Validate() error {
	if p == nil {
		return ErrProfileIsNotConstructed
	}
	return p.guard.Validate(ErrProfileIsNotConstructed)
}

// CustomerID returns the owning customer's identifier.
func (p *Profile) CustomerID() string {
	return p.customerID
}

// AddAddress stores an address under the given label. Re-adding an existing
// label overwrites its address. The first address added to a profile becomes
// the current selection automatically.
func (p *Profile) AddAddress(label, address string) error {
	if label == "" {
		return errs.NewValueIsRequiredError("address label")
	}
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	if _, exists := p.addresses[label]; !exists {
		p.labels = append(p.labels, label)
	}
	p.addresses[label] = address

	if p.current == "" {
		p.current = label
	}
	return nil
}

// SwitchAddress selects the labeled address as the current delivery address.
// Switching to an unknown label is a no-op; the current selection stays.
func (p *Profile) SwitchAddress(label string) error {
	if _, exists := p.addresses[label]; !exists {
		return nil
	}
	p.current = label
	return nil
}

// RemoveAddress deletes the labeled address if present; removal is idempotent.
// When the current selection is removed the selection becomes empty and
// checkout fails until another address is selected.
func (p *Profile) RemoveAddress(label string) {
	if _, exists := p.addresses[label]; !exists {
		return
	}

	delete(p.addresses, label)
	for i, l := range p.labels {
		if l == label {
			p.labels = append(p.labels[:i], p.labels[i+1:]...)
			break
		}
	}
	if p.current == label {
		p.current = ""
	}
}

// Addresses returns all labeled addresses in insertion order.
func (p *Profile) Addresses() []LabeledAddress {
	addresses := make([]LabeledAddress, 0, len(p.labels))
	for _, label := range p.labels {
		addresses = append(addresses, LabeledAddress{Label: label, Address: p.addresses[label]})
	}
	return addresses
}

// CurrentLabel returns the label of the currently selected address,
// or "" when no address is selected.
func (p *Profile) CurrentLabel() string {
	return p.current
}

// DeliveryAddress returns the currently selected address, or "" when the
// profile has no usable address. Implements the order lifecycle's
// delivery-address collaborator contract.
func (p *Profile) DeliveryAddress() string {
	return p.addresses[p.current]
}

// AddFavorite records a favorite restaurant; duplicates are ignored.
func (p *Profile) AddFavorite(restaurantName string) {
	if restaurantName == "" {
		return
	}
	for _, favorite := range p.favorites {
		if favorite == restaurantName {
			return
		}
	}
	p.favorites = append(p.favorites, restaurantName)
}

// RemoveFavorite forgets a favorite restaurant; removal is idempotent.
func (p *Profile) RemoveFavorite(restaurantName string) {
	for i, favorite := range p.favorites {
		if favorite == restaurantName {
			p.favorites = append(p.favorites[:i], p.favorites[i+1:]...)
			return
		}
	}
}

// Favorites returns the favorite restaurants in insertion order.
func (p *Profile) Favorites() []string {
	favorites := make([]string, len(p.favorites))
	copy(favorites, p.favorites)
	return favorites
}

// RateDish records a rating for a dish on the [MinRating, MaxRating] scale.
// Re-rating a dish overwrites the previous value.
func (p *Profile) RateDish(dishName string, rating int) error {
	if dishName == "" {
		return errs.NewValueIsRequiredError("dish name")
	}
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"rating", rating, MinRating, MaxRating,
			fmt.Errorf("rating for %s is out of range", dishName),
		)
	}

	p.ratings[dishName] = rating
	return nil
}

// Rating returns the recorded rating for a dish and whether one exists.
func (p *Profile) Rating(dishName string) (int, bool) {
	rating, ok := p.ratings[dishName]
	return rating, ok
}

// Ratings returns a copy of all dish ratings.
func (p *Profile) Ratings() map[string]int {
	ratings := make(map[string]int, len(p.ratings))
	for dish, rating := range p.ratings {
		ratings[dish] = rating
	}
	return ratings
}
