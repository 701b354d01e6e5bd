package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrNotifyPendingAllocationsCommandIsNotConstructed = errors.New(
	"NotifyPendingAllocationsCommand must be created via NewNotifyPendingAllocationsCommand constructor",
)

// ErrNoPendingAllocationsFound signals an empty retry sweep. The
// notification job treats it as a normal outcome, not a failure.
var ErrNoPendingAllocationsFound = errors.New("no pending allocations found")

// NotifyPendingAllocationsCommand triggers one retry sweep over
// allocations whose vendor notification has not been dispatched yet.
// Carries no parameters; the sweep always covers every pending allocation.
type NotifyPendingAllocationsCommand struct {
	guard guard.ConstructorGuard
}

// NewNotifyPendingAllocationsCommand creates a command for one retry sweep.
func NewNotifyPendingAllocationsCommand() NotifyPendingAllocationsCommand {
	return NotifyPendingAllocationsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c NotifyPendingAllocationsCommand) Validate() error {
	return c.guard.Validate(ErrNotifyPendingAllocationsCommandIsNotConstructed)
}
