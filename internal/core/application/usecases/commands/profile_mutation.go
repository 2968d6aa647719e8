package commands

import (
	"context"

	"ordering/internal/core/domain/model/profile"
)

// mutateProfile runs a mutation against the customer's profile inside a
// transaction: load or create, apply, save, commit. Every profile command
// handler funnels through here so first-contact customers behave the same in
// all of them.
func mutateProfile(
	ctx context.Context,
	uowFactory ProfileUoWFactory,
	customerID string,
	mutate func(p *profile.Profile) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	profileRepo := uow.ProfileRepository()

	p, err := loadOrCreateProfile(ctx, profileRepo, customerID)
	if err != nil {
		return err
	}

	if err = mutate(p); err != nil {
		return err
	}

	if err = profileRepo.Save(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
