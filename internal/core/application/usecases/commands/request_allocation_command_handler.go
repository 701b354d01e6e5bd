package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// RequestAllocationResult reports the allocation the request resolved to.
// Status tells the caller whether the vendor was reached: a pending result
// means dispatch failed and the retry job will pick it up.
type RequestAllocationResult struct {
	AllocationID kernel.UUID
	Status       allocation.Status
}

// RequestAllocationCommandHandler opens an allocation negotiation and
// notifies the vendor. Repeating an identical request returns the open
// negotiation instead of creating a second one, so a double-submitted form
// does not spam the vendor.
//
// The aggregate commits in pending status before the vendor is contacted;
// a dispatch failure therefore loses nothing, the notification job retries
// pending allocations on its schedule.
type RequestAllocationCommandHandler struct {
	uowFactory AllocationUoWFactory
	notifier   ports.VendorNotifier
}

// NewRequestAllocationCommandHandler creates a handler for allocation
// requests. Requires an AllocationUoWFactory and the vendor notifier.
func NewRequestAllocationCommandHandler(
	uowFactory AllocationUoWFactory,
	notifier ports.VendorNotifier,
) RequestAllocationCommandHandler {
	return RequestAllocationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the allocation request: create (or reuse) the pending
// aggregate, dispatch the vendor notification outside the transaction, and
// mark the aggregate notified when dispatch succeeds.
func (h *RequestAllocationCommandHandler) Handle(ctx context.Context, cmd RequestAllocationCommand) (RequestAllocationResult, error) {
	if err := cmd.Validate(); err != nil {
		return RequestAllocationResult{}, err
	}

	a, err := h.findOrCreate(ctx, cmd)
	if err != nil {
		return RequestAllocationResult{}, err
	}

	if a.Status() != allocation.StatusPending {
		return RequestAllocationResult{AllocationID: a.ID(), Status: a.Status()}, nil
	}

	if err := h.notifier.NotifyAllocationRequested(ctx, a); err != nil {
		// dispatch failed; the notification job retries pending allocations
		return RequestAllocationResult{AllocationID: a.ID(), Status: allocation.StatusPending}, nil
	}

	if err := h.markNotified(ctx, a.ID()); err != nil {
		return RequestAllocationResult{}, err
	}

	return RequestAllocationResult{AllocationID: a.ID(), Status: allocation.StatusNotified}, nil
}

// findOrCreate returns the open allocation for the request key, creating a
// fresh pending one when none exists.
func (h *RequestAllocationCommandHandler) findOrCreate(ctx context.Context, cmd RequestAllocationCommand) (*allocation.Allocation, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AllocationRepository()

	existing, err := repo.GetOpenForRequest(ctx, cmd.ProductCode(), cmd.VendorID(), cmd.Date())
	if err == nil {
		if commitErr := uow.Commit(ctx); commitErr != nil {
			return nil, commitErr
		}
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	a, err := allocation.NewAllocation(
		kernel.NewUUID(),
		cmd.Date(),
		cmd.ProductCode(),
		cmd.VendorID(),
		cmd.RequestedQuantity(),
	)
	if err != nil {
		return nil, err
	}

	if err := repo.Add(ctx, a); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (h *RequestAllocationCommandHandler) markNotified(ctx context.Context, id kernel.UUID) error {
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
