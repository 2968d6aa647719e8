package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Stage represents the internal lifecycle state of an order session.
// It implements a state machine with defined transitions so a session always
// moves through the workflow in a legal sequence.
//
// Stage transitions:
//
//	Pending ──> Validated ──> CheckedOut ──> Confirmed
//	               ^   │          │
//	               └───┴──────────┘
//	            (re-validation allowed)
//
// Failed is reachable from any non-terminal stage. Confirmed and Failed are
// terminal: no further transitions are allowed.
//
// Stage is distinct from the customer-facing status label carried by Order;
// it is never shown to customers and only gates operations.
type Stage int

const (
	// Unknown represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	Unknown Stage = iota

	// Pending is the initial stage of a freshly opened order session.
	Pending

	// Validated indicates the cart passed emptiness and availability checks.
	Validated

	// CheckedOut indicates a checkout snapshot was produced for the session.
	CheckedOut

	// Confirmed indicates payment was approved and the order is placed.
	// This is a terminal stage.
	Confirmed

	// Failed indicates the session was abandoned or failed permanently.
	// This is a terminal stage.
	Failed
)

// getStageStrings returns a map of Stage values to their string representations.
func getStageStrings() map[Stage]string {
	return map[Stage]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Validated:  "Validated",
		CheckedOut: "CheckedOut",
		Confirmed:  "Confirmed",
		Failed:     "Failed",
	}
}

// getValidStageStrings returns a map of only valid Stage values.
func getValidStageStrings() map[Stage]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Stage]string{
		Pending:    "Pending",
		Validated:  "Validated",
		CheckedOut: "CheckedOut",
		Confirmed:  "Confirmed",
		Failed:     "Failed",
	}
}

// Validate checks if the Stage value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Stage) Validate() error {
	if _, ok := getValidStageStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// String returns the human-readable name of the stage.
// Implements fmt.Stringer and is safe to call on any Stage value.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the stage allows no further transitions.
func (s Stage) IsTerminal() bool {
	return s == Confirmed || s == Failed
}

// MarkValidated transitions the stage to Validated.
//
// Valid transitions:
//   - Pending -> Validated (first validation)
//   - Validated -> Validated (re-validation)
//   - CheckedOut -> Validated (confirm re-runs validation)
//
// Returns (0, error) if the stage is terminal or invalid.
func (s Stage) MarkValidated() (Stage, error) {
	if s != Pending && s != Validated && s != CheckedOut {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			fmt.Errorf("%s is not a valid stage to validate", s.String()),
		)
	}

	return Validated, nil
}

// MarkCheckedOut transitions the stage to CheckedOut.
//
// Valid transitions:
//   - Validated -> CheckedOut (first checkout)
//   - CheckedOut -> CheckedOut (checkout snapshot can be retaken)
//
// Returns (0, error) for any other stage; in particular a Pending session must
// be validated before checkout.
func (s Stage) MarkCheckedOut() (Stage, error) {
	if s != Validated && s != CheckedOut {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			fmt.Errorf("%s is not a valid stage to check out", s.String()),
		)
	}

	return CheckedOut, nil
}

// MarkConfirmed transitions the stage to Confirmed.
//
// Valid transitions:
//   - Validated -> Confirmed (checkout snapshot is optional)
//   - CheckedOut -> Confirmed
//
// Confirmed is terminal; confirming twice is an invalid transition.
func (s Stage) MarkConfirmed() (Stage, error) {
	if s != Validated && s != CheckedOut {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			fmt.Errorf("%s is not a valid stage to confirm", s.String()),
		)
	}

	return Confirmed, nil
}

// MarkFailed transitions the stage to Failed.
// Allowed from any non-terminal stage; Failed is terminal.
func (s Stage) MarkFailed() (Stage, error) {
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			fmt.Errorf("%s is not a valid stage to fail", s.String()),
		)
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}

	return Failed, nil
}
