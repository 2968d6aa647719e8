package commands

import (
	"context"

	"ordering/internal/core/domain/model/profile"
)

// AddProfileAddressCommandHandler stores labeled delivery addresses on
// customer profiles.
type AddProfileAddressCommandHandler struct {
	uowFactory ProfileUoWFactory
}

// NewAddProfileAddressCommandHandler creates a handler for address additions.
func NewAddProfileAddressCommandHandler(uowFactory ProfileUoWFactory) AddProfileAddressCommandHandler {
	return AddProfileAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add profile address command.
// Creates the profile on first contact. Adding a label that already exists
// overwrites its address.
func (h *AddProfileAddressCommandHandler) Handle(ctx context.Context, cmd AddProfileAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateProfile(ctx, h.uowFactory, cmd.CustomerID(), func(p *profile.Profile) error {
		return p.AddAddress(cmd.Label(), cmd.Address())
	})
}
