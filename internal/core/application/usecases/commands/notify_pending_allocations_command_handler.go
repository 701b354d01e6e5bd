package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
)

// NotifyPendingAllocationsCommandHandler re-dispatches vendor notifications
// for allocations stuck in pending. Each notified allocation is marked in
// its own transaction; a vendor that still cannot be reached simply stays
// pending for the next sweep.
type NotifyPendingAllocationsCommandHandler struct {
	uowFactory AllocationUoWFactory
	notifier   ports.VendorNotifier
}

// NewNotifyPendingAllocationsCommandHandler creates a handler for the
// notification retry sweep. Requires an AllocationUoWFactory and the
// vendor notifier.
func NewNotifyPendingAllocationsCommandHandler(
	uowFactory AllocationUoWFactory,
	notifier ports.VendorNotifier,
) NotifyPendingAllocationsCommandHandler {
	return NotifyPendingAllocationsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle runs one sweep: list pending allocations, dispatch each vendor
// notification, and mark the reached ones notified. Returns
// ErrNoPendingAllocationsFound when there is nothing to retry.
func (h *NotifyPendingAllocationsCommandHandler) Handle(ctx context.Context, cmd NotifyPendingAllocationsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	pending, err := h.listPending(ctx)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return ErrNoPendingAllocationsFound
	}

	for _, a := range pending {
		if err := h.notifier.NotifyAllocationRequested(ctx, a); err != nil {
			continue
		}
		if err := h.markNotified(ctx, a.ID()); err != nil {
			return err
		}
	}

	return nil
}

func (h *NotifyPendingAllocationsCommandHandler) listPending(ctx context.Context) ([]*allocation.Allocation, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pending, err := uow.AllocationRepository().GetAllInStatus(ctx, allocation.StatusPending)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return pending, nil
}

func (h *NotifyPendingAllocationsCommandHandler) markNotified(ctx context.Context, id kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AllocationRepository()

	a, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := a.MarkNotified(time.Now().UTC()); err != nil {
		return err
	}

	if err := repo.Update(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
