package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
	ErrOrderIDsAreRequired = errors.New("at least one order id is required")
)

// ChangeOrderStatusCommand represents a bulk request to move a set of
// orders to one target status. Each order is processed on its own; the
// transition table decides per order whether the move is legal.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID
	target   order.Status
	actorID  string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to transition orders to the
// target status. Validates that at least one order id is given, every id is
// constructed, the target status is known, and the actor is identified.
func NewChangeOrderStatusCommand(
	orderIDs []kernel.UUID,
	target order.Status,
	actorID string,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderIDs(orderIDs),
		cmd.setTarget(target),
		cmd.setActorID(actorID),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderIDs returns the identifiers of the orders to transition.
func (c ChangeOrderStatusCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// Target returns the status every order in the batch should move to.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

// ActorID returns the identifier of the operator running the transition.
func (c ChangeOrderStatusCommand) ActorID() string {
	return c.actorID
}

func (c *ChangeOrderStatusCommand) setOrderIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return ErrOrderIDsAreRequired
	}

	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = ids
	return nil
}

func (c *ChangeOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *ChangeOrderStatusCommand) setActorID(actorID string) error {
	if actorID == "" {
		return ErrActorIDIsRequired
	}

	c.actorID = actorID
	return nil
}
