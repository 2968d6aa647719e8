// Package profilerepo provides data transfer objects and mapping functions
// for customer profile persistence. A profile spans four tables: the profile
// row itself plus its addresses, favorites, and ratings.
package profilerepo

import (
	"ordering/internal/core/domain/model/profile"
)

// ProfileDTO represents the root profile row.
type ProfileDTO struct {
	CustomerID   string `gorm:"primaryKey"`
	CurrentLabel string
}

// TableName specifies the database table name for profile roots.
func (ProfileDTO) TableName() string {
	return "profiles"
}

// AddressDTO represents one labeled delivery address. Position preserves the
// order in which the customer added addresses.
type AddressDTO struct {
	CustomerID string `gorm:"primaryKey"`
	Label      string `gorm:"primaryKey"`
	Address    string
	Position   int
}

// TableName specifies the database table name for profile addresses.
func (AddressDTO) TableName() string {
	return "profile_addresses"
}

// FavoriteDTO represents one favorite restaurant. Position preserves the
// order in which favorites were added.
type FavoriteDTO struct {
	CustomerID     string `gorm:"primaryKey"`
	RestaurantName string `gorm:"primaryKey"`
	Position       int
}

// TableName specifies the database table name for profile favorites.
func (FavoriteDTO) TableName() string {
	return "profile_favorites"
}

// RatingDTO represents one dish rating.
type RatingDTO struct {
	CustomerID string `gorm:"primaryKey"`
	DishName   string `gorm:"primaryKey"`
	Rating     int
}

// TableName specifies the database table name for profile ratings.
func (RatingDTO) TableName() string {
	return "profile_ratings"
}

// fromDomain converts a profile aggregate to its database rows.
func fromDomain(p *profile.Profile) (ProfileDTO, []AddressDTO, []FavoriteDTO, []RatingDTO) {
	customerID := p.CustomerID()

	root := ProfileDTO{
		CustomerID:   customerID,
		CurrentLabel: p.CurrentLabel(),
	}

	labeled := p.Addresses()
	addresses := make([]AddressDTO, 0, len(labeled))
	for i, a := range labeled {
		addresses = append(addresses, AddressDTO{
			CustomerID: customerID,
			Label:      a.Label,
			Address:    a.Address,
			Position:   i,
		})
	}

	names := p.Favorites()
	favorites := make([]FavoriteDTO, 0, len(names))
	for i, name := range names {
		favorites = append(favorites, FavoriteDTO{
			CustomerID:     customerID,
			RestaurantName: name,
			Position:       i,
		})
	}

	rated := p.Ratings()
	ratings := make([]RatingDTO, 0, len(rated))
	for dish, rating := range rated {
		ratings = append(ratings, RatingDTO{
			CustomerID: customerID,
			DishName:   dish,
			Rating:     rating,
		})
	}

	return root, addresses, favorites, ratings
}

// toDomain reconstructs a profile aggregate from its database rows.
func toDomain(
	root ProfileDTO,
	addresses []AddressDTO,
	favorites []FavoriteDTO,
	ratings []RatingDTO,
) (*profile.Profile, error) {
	labeled := make([]profile.LabeledAddress, 0, len(addresses))
	for _, a := range addresses {
		labeled = append(labeled, profile.LabeledAddress{
			Label:   a.Label,
			Address: a.Address,
		})
	}

	names := make([]string, 0, len(favorites))
	for _, f := range favorites {
		names = append(names, f.RestaurantName)
	}

	rated := make(map[string]int, len(ratings))
	for _, r := range ratings {
		rated[r.DishName] = r.Rating
	}

	return profile.RestoreProfile(root.CustomerID, labeled, root.CurrentLabel, names, rated)
}
