package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRespondAllocationCommandIsNotConstructed = errors.New(
		"RespondAllocationCommand must be created via NewRespondAllocationCommand constructor",
	)
	ErrAvailableQuantityIsNegative = errors.New("available quantity must not be negative")
)

// RespondAllocationCommand represents a vendor answering an allocation
// request with the quantity it can actually supply. Zero is a valid
// answer; the quantity may also exceed what was asked for.
type RespondAllocationCommand struct { //nolint:recvcheck //using for validation
	allocationID      kernel.UUID
	availableQuantity int
	memo              string
	actorID           string

	guard guard.ConstructorGuard
}

// NewRespondAllocationCommand creates a command to record a vendor's
// response. Validates the allocation id and that the quantity is not
// negative.
func NewRespondAllocationCommand(
	allocationID kernel.UUID,
	availableQuantity int,
	memo string,
	actorID string,
) (RespondAllocationCommand, error) {
	cmd := RespondAllocationCommand{
		memo:  memo,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAllocationID(allocationID),
		cmd.setAvailableQuantity(availableQuantity),
		cmd.setActorID(actorID),
	); err != nil {
		return RespondAllocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RespondAllocationCommand) Validate() error {
	return c.guard.Validate(ErrRespondAllocationCommandIsNotConstructed)
}

// AllocationID returns the negotiation being answered.
func (c RespondAllocationCommand) AllocationID() kernel.UUID {
	return c.allocationID
}

// AvailableQuantity returns the quantity the vendor offers.
func (c RespondAllocationCommand) AvailableQuantity() int {
	return c.availableQuantity
}

// Memo returns the vendor's free-text note, if any.
func (c RespondAllocationCommand) Memo() string {
	return c.memo
}

// ActorID returns the identifier of the responding vendor user.
func (c RespondAllocationCommand) ActorID() string {
	return c.actorID
}

func (c *RespondAllocationCommand) setAllocationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.allocationID = id
	return nil
}

func (c *RespondAllocationCommand) setAvailableQuantity(q int) error {
	if q < 0 {
		return ErrAvailableQuantityIsNegative
	}

	c.availableQuantity = q
	return nil
}

func (c *RespondAllocationCommand) setActorID(actorID string) error {
	if actorID == "" {
		return ErrActorIDIsRequired
	}

	c.actorID = actorID
	return nil
}
