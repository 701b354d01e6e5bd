package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// RegisterTrackingResult is the per-order outcome report of one tracking
// registration batch.
type RegisterTrackingResult struct {
	Succeeded []kernel.UUID
	Failed    []OrderFailure
}

// RegisterTrackingCommandHandler attaches carrier tracking data to orders.
// Each entry runs in its own transaction; an order that refuses the data
// (wrong status, missing fields) is reported without blocking the rest of
// the batch.
type RegisterTrackingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRegisterTrackingCommandHandler creates a handler for tracking
// registration. Requires an OrderUoWFactory for per-entry transactions.
func NewRegisterTrackingCommandHandler(uowFactory OrderUoWFactory) RegisterTrackingCommandHandler {
	return RegisterTrackingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch and returns the per-order outcomes.
func (h *RegisterTrackingCommandHandler) Handle(ctx context.Context, cmd RegisterTrackingCommand) (RegisterTrackingResult, error) {
	if err := cmd.Validate(); err != nil {
		return RegisterTrackingResult{}, err
	}

	result := RegisterTrackingResult{}
	for _, entry := range cmd.Entries() {
		err := withConflictRetry(func() error {
			return h.registerOne(ctx, entry)
		})
		if err != nil {
			result.Failed = append(result.Failed, OrderFailure{OrderID: entry.OrderID, Reason: err.Error()})
			continue
		}
		result.Succeeded = append(result.Succeeded, entry.OrderID)
	}

	return result, nil
}

func (h *RegisterTrackingCommandHandler) registerOne(ctx context.Context, entry TrackingEntry) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, entry.OrderID)
	if err != nil {
		return err
	}

	if err := o.RegisterTracking(entry.TrackingNumber, entry.CourierCompany); err != nil {
		return err
	}

	if err := orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
