package commands

import (
	"context"
	"time"
)

// ConfirmAllocationCommandHandler finalizes a negotiation on the vendor's
// responded quantity. Confirming an already-confirmed allocation is a
// no-op, so a double-clicked confirm button changes nothing.
type ConfirmAllocationCommandHandler struct {
	uowFactory AllocationUoWFactory
}

// NewConfirmAllocationCommandHandler creates a handler for allocation
// confirmation. Requires an AllocationUoWFactory for transactional persistence.
func NewConfirmAllocationCommandHandler(uowFactory AllocationUoWFactory) ConfirmAllocationCommandHandler {
	return ConfirmAllocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation.
func (h *ConfirmAllocationCommandHandler) Handle(ctx context.Context, cmd ConfirmAllocationCommand) error {
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

	if err := a.Confirm(time.Now().UTC()); err != nil {
		return err
	}

	if err := repo.Update(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
