// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/profile"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// HistoryRepoFactory provides access to the order history repository within a transaction.
	HistoryRepoFactory interface {
		OrderHistoryRepository() ports.OrderHistoryRepository
	}

	// ProfileRepoFactory provides access to the profile repository within a transaction.
	ProfileRepoFactory interface {
		ProfileRepository() ports.ProfileRepository
	}

	// HistoryUoW manages transactions for order-history-only operations.
	HistoryUoW interface {
		TxManager
		HistoryRepoFactory
	}

	// HistoryUoWFactory creates new history unit of work instances.
	HistoryUoWFactory interface {
		Create() HistoryUoW
	}

	// ProfileUoW manages transactions for profile-only operations.
	ProfileUoW interface {
		TxManager
		ProfileRepoFactory
	}

	// ProfileUoWFactory creates new profile unit of work instances.
	ProfileUoWFactory interface {
		Create() ProfileUoW
	}
)

// loadOrCreateProfile fetches the customer's profile, creating and saving an
// empty one on first contact. Profile commands and order start share this
// behavior so a brand-new customer never hits a not-found error.
func loadOrCreateProfile(
	ctx context.Context,
	repo ports.ProfileRepository,
	customerID string,
) (*profile.Profile, error) {
	p, err := repo.Get(ctx, customerID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	p, err = profile.NewProfile(customerID)
	if err != nil {
		return nil, err
	}
	if err = repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
