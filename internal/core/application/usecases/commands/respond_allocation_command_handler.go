package commands

import (
	"context"
	"time"
)

// RespondAllocationCommandHandler records a vendor's answer on the
// negotiation. Re-responding before confirmation overwrites the previous
// answer, last write wins.
type RespondAllocationCommandHandler struct {
	uowFactory AllocationUoWFactory
}

// NewRespondAllocationCommandHandler creates a handler for vendor
// responses. Requires an AllocationUoWFactory for transactional persistence.
func NewRespondAllocationCommandHandler(uowFactory AllocationUoWFactory) RespondAllocationCommandHandler {
	return RespondAllocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vendor response.
func (h *RespondAllocationCommandHandler) Handle(ctx context.Context, cmd RespondAllocationCommand) error {
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

	if err := a.Respond(cmd.AvailableQuantity(), cmd.Memo(), time.Now().UTC()); err != nil {
		return err
	}

	if err := repo.Update(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
