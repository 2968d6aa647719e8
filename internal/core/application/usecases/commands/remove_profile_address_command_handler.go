package commands

import (
	"context"

	"ordering/internal/core/domain/model/profile"
)

// RemoveProfileAddressCommandHandler deletes labeled addresses from customer
// profiles.
type RemoveProfileAddressCommandHandler struct {
	uowFactory ProfileUoWFactory
}

// NewRemoveProfileAddressCommandHandler creates a handler for address removals.
func NewRemoveProfileAddressCommandHandler(uowFactory ProfileUoWFactory) RemoveProfileAddressCommandHandler {
	return RemoveProfileAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove profile address command.
// Removing the current address clears the customer's delivery address until
// another one is chosen.
func (h *RemoveProfileAddressCommandHandler) Handle(ctx context.Context, cmd RemoveProfileAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateProfile(ctx, h.uowFactory, cmd.CustomerID(), func(p *profile.Profile) error {
		p.RemoveAddress(cmd.Label())
		return nil
	})
}
