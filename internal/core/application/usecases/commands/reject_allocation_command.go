package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRejectAllocationCommandIsNotConstructed = errors.New(
	"RejectAllocationCommand must be created via NewRejectAllocationCommand constructor",
)

// RejectAllocationCommand represents an operator declining a vendor's
// response and closing the negotiation without capacity.
type RejectAllocationCommand struct { //nolint:recvcheck //using for validation
	allocationID kernel.UUID
	actorID      string

	guard guard.ConstructorGuard
}

// NewRejectAllocationCommand creates a command to reject an allocation.
func NewRejectAllocationCommand(allocationID kernel.UUID, actorID string) (RejectAllocationCommand, error) {
	cmd := RejectAllocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAllocationID(allocationID),
		cmd.setActorID(actorID),
	); err != nil {
		return RejectAllocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectAllocationCommand) Validate() error {
	return c.guard.Validate(ErrRejectAllocationCommandIsNotConstructed)
}

// AllocationID returns the negotiation being rejected.
func (c RejectAllocationCommand) AllocationID() kernel.UUID {
	return c.allocationID
}

// ActorID returns the identifier of the rejecting operator.
func (c RejectAllocationCommand) ActorID() string {
	return c.actorID
}

func (c *RejectAllocationCommand) setAllocationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.allocationID = id
	return nil
}

func (c *RejectAllocationCommand) setActorID(actorID string) error {
	if actorID == "" {
		return ErrActorIDIsRequired
	}

	c.actorID = actorID
	return nil
}
