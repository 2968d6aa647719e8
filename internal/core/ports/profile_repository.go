package ports

import (
	"context"

	"ordering/internal/core/domain/model/profile"
)

// ProfileRepository defines the persistence contract for customer profiles.
// Profiles are an explicit per-customer store, not process-wide state, so the
// ordering core stays testable in isolation.
type ProfileRepository interface {
	// Save upserts the profile for its customer.
	Save(ctx context.Context, p *profile.Profile) error

	// Get retrieves the profile of the given customer.
	// Returns an object-not-found error when the customer has no profile yet.
	Get(ctx context.Context, customerID string) (*profile.Profile, error)
}
