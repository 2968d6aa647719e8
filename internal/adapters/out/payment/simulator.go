// Package payment provides the simulated payment gateway used in place of a
// real acquirer integration.
package payment

import (
	"context"

	"github.com/google/uuid"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"
)

// DefaultDeclineCard is the card number the simulator declines when no other
// decline card is configured.
const DefaultDeclineCard = "1111222233334444"

const declineReason = "card declined by issuer"

// Simulator is an in-process services.PaymentGateway. It approves every
// charge except those made with the configured decline card, for which it
// returns a decline result. It never errors: gateway faults are exercised in
// tests with failing stubs, not simulated here.
type Simulator struct {
	declineCard string
}

// NewSimulator creates a gateway simulator that declines the given card
// number. Pass DefaultDeclineCard unless a test needs another trigger.
func NewSimulator(declineCard string) (*Simulator, error) {
	if declineCard == "" {
		return nil, errs.NewValueIsRequiredError("declineCard")
	}
	return &Simulator{declineCard: declineCard}, nil
}

// Charge settles the amount. The simulator accepts any positive or zero
// amount; amount policy is not a gateway concern.
func (s *Simulator) Charge(
	_ context.Context,
	_ services.Method,
	details services.PaymentDetails,
	_ kernel.Money,
) (services.ChargeResult, error) {
	if details.CardNumber == s.declineCard {
		return services.ChargeResult{
			Approved:      false,
			DeclineReason: declineReason,
		}, nil
	}

	return services.ChargeResult{
		Approved:      true,
		TransactionID: uuid.NewString(),
	}, nil
}
