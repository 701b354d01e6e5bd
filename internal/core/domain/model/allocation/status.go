package allocation

import (
	"fulfillment/internal/pkg/errs"
)

// Status tracks the vendor forecast negotiation workflow.
//
// State transitions:
//
//	Pending ──> Notified ──> Responded ──> Confirmed
//	                             │    └──> Rejected
//	                             └──> Responded (re-respond, last write wins)
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending means the request exists but the vendor has not been
	// notified yet (notification dispatch failed and will be retried).
	StatusPending

	// StatusNotified means the vendor has been informed of the request.
	StatusNotified

	// StatusResponded means the vendor reported an available quantity.
	// Re-responding overwrites the quantity; responses never accumulate.
	StatusResponded

	// StatusConfirmed is a terminal state: the platform accepted the
	// vendor's response and the quantity feeds fulfillment routing.
	StatusConfirmed

	// StatusRejected is a terminal state: the response was turned down.
	StatusRejected
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "pending",
		StatusNotified:  "notified",
		StatusResponded: "responded",
		StatusConfirmed: "confirmed",
		StatusRejected:  "rejected",
	}
}

// StatusFromString parses a status name.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("allocation status: " + s)
}

// String returns the wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects the zero and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidError("allocation status")
	}
	return nil
}

// IsTerminal reports whether the negotiation is settled.
func (s Status) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusRejected
}
