package commands

import (
	"context"
)

// OverrideRouteCommandHandler replaces the route on a ReadyToShip order.
// The domain rejects overrides once the order starts shipping.
type OverrideRouteCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewOverrideRouteCommandHandler creates a handler for route overrides.
// Requires an OrderUoWFactory for transactional persistence.
func NewOverrideRouteCommandHandler(uowFactory OrderUoWFactory) OverrideRouteCommandHandler {
	return OverrideRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the override. A concurrency conflict is retried once.
func (h *OverrideRouteCommandHandler) Handle(ctx context.Context, cmd OverrideRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return withConflictRetry(func() error {
		return h.override(ctx, cmd)
	})
}

func (h *OverrideRouteCommandHandler) override(ctx context.Context, cmd OverrideRouteCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err := o.OverrideRoute(cmd.FulfillmentType(), cmd.VendorID()); err != nil {
		return err
	}

	if err := orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
