package commands

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var ErrAdvanceDeliveryStatusesCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryStatusesCommand must be created via NewAdvanceDeliveryStatusesCommand constructor",
)

// AdvanceDeliveryStatusesCommand triggers one progression step for every
// confirmed order still in flight: Confirmed moves to Preparing, Preparing to
// Out for Delivery, Out for Delivery to Delivered.
//
// Example:
//
//	cmd := NewAdvanceDeliveryStatusesCommand()
//	handler := NewAdvanceDeliveryStatusesCommandHandler(uowFactory)
//
//	// Run periodically to simulate delivery progress
//	ticker := time.NewTicker(30 * time.Second)
//	for range ticker.C {
//	    if err := handler.Handle(ctx, cmd); err != nil {
//	        log.Printf("Delivery progression failed: %v", err)
//	    }
//	}
type AdvanceDeliveryStatusesCommand struct {
	guard guard.ConstructorGuard
}

// NewAdvanceDeliveryStatusesCommand creates a command to advance all
// undelivered orders one status step. This is a parameterless batch command.
func NewAdvanceDeliveryStatusesCommand() AdvanceDeliveryStatusesCommand {
	command := AdvanceDeliveryStatusesCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
func (c *AdvanceDeliveryStatusesCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryStatusesCommandIsNotConstructed)
}
