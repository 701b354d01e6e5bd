package commands

import (
	"context"
)

// RejectAllocationCommandHandler closes a negotiation without capacity.
// Rejecting an already-rejected allocation is a no-op.
type RejectAllocationCommandHandler struct {
	uowFactory AllocationUoWFactory
}

// NewRejectAllocationCommandHandler creates a handler for allocation
// rejection. Requires an AllocationUoWFactory for transactional persistence.
func NewRejectAllocationCommandHandler(uowFactory AllocationUoWFactory) RejectAllocationCommandHandler {
	return RejectAllocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection.
func (h *RejectAllocationCommandHandler) Handle(ctx context.Context, cmd RejectAllocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AllocationRepository()
	a, err := repo.Get(ctx, cmd.AllocationID())
	if err != nil {
		return err
	}

	if err := a.Reject(); err != nil {
		return err
	}

	if err := repo.Update(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
