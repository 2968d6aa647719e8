package profilerepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ordering/internal/core/domain/model/profile"
	"ordering/internal/pkg/errs"
)

// GormProfileRepository implements ProfileRepository using GORM.
//
// Save replaces the profile's child rows wholesale instead of diffing them;
// profiles are small and the simple write keeps the repository obviously
// correct. Callers are expected to run Save inside a unit of work.
type GormProfileRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormProfileRepository creates a new GORM profile repository.
func NewGormProfileRepository(db *gorm.DB, tracker aggregateTracker) *GormProfileRepository {
	return &GormProfileRepository{
		db:      db,
		tracker: tracker,
	}
}

// Save upserts the profile root row and rewrites its addresses, favorites,
// and ratings.
func (r *GormProfileRepository) Save(ctx context.Context, p *profile.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	root, addresses, favorites, ratings := fromDomain(p)
	db := r.db.WithContext(ctx)

	if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&root).Error; err != nil {
		return err
	}

	customerID := root.CustomerID
	if err := errors.Join(
		db.Delete(&AddressDTO{}, "customer_id = ?", customerID).Error,
		db.Delete(&FavoriteDTO{}, "customer_id = ?", customerID).Error,
		db.Delete(&RatingDTO{}, "customer_id = ?", customerID).Error,
	); err != nil {
		return err
	}

	if len(addresses) > 0 {
		if err := db.Create(&addresses).Error; err != nil {
			return err
		}
	}
	if len(favorites) > 0 {
		if err := db.Create(&favorites).Error; err != nil {
			return err
		}
	}
	if len(ratings) > 0 {
		if err := db.Create(&ratings).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(customerID, p)
	return nil
}

// Get retrieves the profile of the given customer.
func (r *GormProfileRepository) Get(ctx context.Context, customerID string) (*profile.Profile, error) {
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerID")
	}

	db := r.db.WithContext(ctx)

	var root ProfileDTO
	if err := db.First(&root, "customer_id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("profile", customerID)
		}
		return nil, err
	}

	var addresses []AddressDTO
	if err := db.Order("position").Find(&addresses, "customer_id = ?", customerID).Error; err != nil {
		return nil, err
	}

	var favorites []FavoriteDTO
	if err := db.Order("position").Find(&favorites, "customer_id = ?", customerID).Error; err != nil {
		return nil, err
	}

	var ratings []RatingDTO
	if err := db.Find(&ratings, "customer_id = ?", customerID).Error; err != nil {
		return nil, err
	}

	return toDomain(root, addresses, favorites, ratings)
}
