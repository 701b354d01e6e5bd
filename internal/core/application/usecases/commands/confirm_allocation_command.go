package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrConfirmAllocationCommandIsNotConstructed = errors.New(
	"ConfirmAllocationCommand must be created via NewConfirmAllocationCommand constructor",
)

// ConfirmAllocationCommand represents an operator locking in a vendor's
// responded quantity. A confirmed allocation feeds the fulfillment
// router's headroom computation.
type ConfirmAllocationCommand struct { //nolint:recvcheck //using for validation
	allocationID kernel.UUID
	actorID      string

	guard guard.ConstructorGuard
}

// NewConfirmAllocationCommand creates a command to confirm an allocation.
func NewConfirmAllocationCommand(allocationID kernel.UUID, actorID string) (ConfirmAllocationCommand, error) {
	cmd := ConfirmAllocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAllocationID(allocationID),
		cmd.setActorID(actorID),
	); err != nil {
		return ConfirmAllocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmAllocationCommand) Validate() error {
	return c.guard.Validate(ErrConfirmAllocationCommandIsNotConstructed)
}

// AllocationID returns the negotiation being confirmed.
func (c ConfirmAllocationCommand) AllocationID() kernel.UUID {
	return c.allocationID
}

// ActorID returns the identifier of the confirming operator.
func (c ConfirmAllocationCommand) ActorID() string {
	return c.actorID
}

func (c *ConfirmAllocationCommand) setAllocationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.allocationID = id
	return nil
}

func (c *ConfirmAllocationCommand) setActorID(actorID string) error {
	if actorID == "" {
		return ErrActorIDIsRequired
	}

	c.actorID = actorID
	return nil
}
