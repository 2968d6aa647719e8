package commands

import (
	"context"

	"ordering/internal/core/domain/model/profile"
)

// SetFavoriteCommandHandler marks and unmarks favorite restaurants on
// customer profiles.
type SetFavoriteCommandHandler struct {
	uowFactory ProfileUoWFactory
}

// NewSetFavoriteCommandHandler creates a handler for favorite changes.
func NewSetFavoriteCommandHandler(uowFactory ProfileUoWFactory) SetFavoriteCommandHandler {
	return SetFavoriteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the set favorite command.
func (h *SetFavoriteCommandHandler) Handle(ctx context.Context, cmd SetFavoriteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateProfile(ctx, h.uowFactory, cmd.CustomerID(), func(p *profile.Profile) error {
		if cmd.Favored() {
			p.AddFavorite(cmd.RestaurantName())
		} else {
			p.RemoveFavorite(cmd.RestaurantName())
		}
		return nil
	})
}
