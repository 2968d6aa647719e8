package commands

import (
	"context"

	"ordering/internal/core/domain/model/profile"
)

// RateDishCommandHandler records dish ratings on customer profiles.
type RateDishCommandHandler struct {
	uowFactory ProfileUoWFactory
}

// NewRateDishCommandHandler creates a handler for dish ratings.
func NewRateDishCommandHandler(uowFactory ProfileUoWFactory) RateDishCommandHandler {
	return RateDishCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rate dish command.
// An out-of-range rating is rejected by the profile aggregate and nothing is
// persisted.
func (h *RateDishCommandHandler) Handle(ctx context.Context, cmd RateDishCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateProfile(ctx, h.uowFactory, cmd.CustomerID(), func(p *profile.Profile) error {
		return p.RateDish(cmd.DishName(), cmd.Rating())
	})
}
