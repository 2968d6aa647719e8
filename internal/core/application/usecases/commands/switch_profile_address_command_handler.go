package commands

import (
	"context"

	"ordering/internal/core/domain/model/profile"
)

// SwitchProfileAddressCommandHandler changes which stored address is the
// customer's current delivery address.
type SwitchProfileAddressCommandHandler struct {
	uowFactory ProfileUoWFactory
}

// NewSwitchProfileAddressCommandHandler creates a handler for address switches.
func NewSwitchProfileAddressCommandHandler(uowFactory ProfileUoWFactory) SwitchProfileAddressCommandHandler {
	return SwitchProfileAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the switch profile address command.
// An unknown label leaves the current selection unchanged.
func (h *SwitchProfileAddressCommandHandler) Handle(ctx context.Context, cmd SwitchProfileAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateProfile(ctx, h.uowFactory, cmd.CustomerID(), func(p *profile.Profile) error {
		return p.SwitchAddress(cmd.Label())
	})
}
