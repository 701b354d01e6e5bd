package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRegisterTrackingCommandIsNotConstructed = errors.New(
		"RegisterTrackingCommand must be created via NewRegisterTrackingCommand constructor",
	)
	ErrEntriesAreRequired = errors.New("at least one tracking entry is required")
)

// TrackingEntry pairs one order with the carrier data assigned to it.
type TrackingEntry struct {
	OrderID        kernel.UUID
	TrackingNumber string
	CourierCompany string
}

// RegisterTrackingCommand represents a bulk request to attach carrier
// tracking data to orders, typically from a carrier's export file. Each
// entry is processed on its own.
type RegisterTrackingCommand struct { //nolint:recvcheck //using for validation
	entries []TrackingEntry
	actorID string

	guard guard.ConstructorGuard
}

// NewRegisterTrackingCommand creates a command to register tracking data.
// Validates that at least one entry is given and every entry carries a
// constructed order id, a tracking number, and a courier company.
func NewRegisterTrackingCommand(entries []TrackingEntry, actorID string) (RegisterTrackingCommand, error) {
	cmd := RegisterTrackingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEntries(entries),
		cmd.setActorID(actorID),
	); err != nil {
		return RegisterTrackingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterTrackingCommand) Validate() error {
	return c.guard.Validate(ErrRegisterTrackingCommandIsNotConstructed)
}

// Entries returns the tracking entries of the batch.
func (c RegisterTrackingCommand) Entries() []TrackingEntry {
	return c.entries
}

// ActorID returns the identifier of the operator registering the data.
func (c RegisterTrackingCommand) ActorID() string {
	return c.actorID
}

func (c *RegisterTrackingCommand) setEntries(entries []TrackingEntry) error {
	if len(entries) == 0 {
		return ErrEntriesAreRequired
	}

	for _, e := range entries {
		if err := e.OrderID.Validate(); err != nil {
			return err
		}
		if e.TrackingNumber == "" {
			return errs.NewValueIsRequiredError("trackingNumber")
		}
		if e.CourierCompany == "" {
			return errs.NewValueIsRequiredError("courierCompany")
		}
	}

	c.entries = entries
	return nil
}

func (c *RegisterTrackingCommand) setActorID(actorID string) error {
	if actorID == "" {
		return ErrActorIDIsRequired
	}

	c.actorID = actorID
	return nil
}
