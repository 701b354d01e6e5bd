package order

import (
	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a fulfillment order.
// It implements a state machine with an explicit transition table so that
// illegal transitions are rejected at validation time instead of silently
// leaving the order unchanged.
//
// State transitions:
//
//	Waiting ⇄ Preparing ──> ReadyToShip ──> Shipping ──> Delivered
//	   │          │
//	   └──────────┴──> AdminCancelled / MemberCancelled
//
// Waiting→Preparing carries no stock effect (material stock is reserved at
// ingestion). Preparing→Waiting and both cancellations are restoring
// transitions: the stock reserved for the order is credited back, gated by
// the order's stockRestored marker.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Waiting is the initial status set by the ingestion pipeline.
	// Material stock for the order is already reserved.
	Waiting

	// Preparing indicates the order is being picked and packed.
	Preparing

	// ReadyToShip indicates the fulfillment router has assigned a route
	// (self or vendor) and the order awaits handover to a courier.
	ReadyToShip

	// Shipping indicates the order left the warehouse. Requires a tracking
	// number and courier company to be registered beforehand.
	Shipping

	// Delivered is a terminal state: the recipient received the order.
	Delivered

	// AdminCancelled is a terminal state: cancelled by an operator.
	AdminCancelled

	// MemberCancelled is a terminal state: cancelled on the member's behalf.
	MemberCancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		Waiting:         "Waiting",
		Preparing:       "Preparing",
		ReadyToShip:     "ReadyToShip",
		Shipping:        "Shipping",
		Delivered:       "Delivered",
		AdminCancelled:  "AdminCancelled",
		MemberCancelled: "MemberCancelled",
	}
}

// transitionTable is the single source of truth for allowed transitions.
// Any (from, to) pair absent from this table is rejected.
func transitionTable() map[Status][]Status {
	return map[Status][]Status{
		Waiting:     {Preparing, AdminCancelled, MemberCancelled},
		Preparing:   {Waiting, ReadyToShip, AdminCancelled, MemberCancelled},
		ReadyToShip: {Shipping},
		Shipping:    {Delivered},
	}
}

// StatusFromString parses a status name as used on the wire and in storage.
// Returns an error for unknown names; "Unknown" itself is not accepted.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status: " + s)
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// CanTransitionTo reports whether the transition table permits moving from
// this status to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitionTable()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the move to target against the transition table.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, *errs.InvalidTransitionError) otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == AdminCancelled || s == MemberCancelled
}

// IsCancelled reports whether the status is one of the cancellation states.
// Cancelled orders do not count toward external order number uniqueness.
func (s Status) IsCancelled() bool {
	return s == AdminCancelled || s == MemberCancelled
}

// IsRestoringTransition reports whether moving from this status to target
// must credit the order's reserved material stock back to the ledger.
// The credit itself is additionally gated by the order's stockRestored
// marker so that a second restore is a no-op rather than a double credit.
func (s Status) IsRestoringTransition(target Status) bool {
	if s == Preparing && target == Waiting {
		return true
	}
	return (s == Waiting || s == Preparing) && target.IsCancelled()
}
