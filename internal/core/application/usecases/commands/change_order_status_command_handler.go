package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// OrderFailure reports one order that could not be transitioned and why.
type OrderFailure struct {
	OrderID kernel.UUID
	Reason  string
}

// ChangeOrderStatusResult is the per-order outcome report of one bulk
// transition batch.
type ChangeOrderStatusResult struct {
	Succeeded []kernel.UUID
	Failed    []OrderFailure
}

// ChangeOrderStatusCommandHandler drives the order state machine for bulk
// batches. Each order gets its own transaction, so an illegal transition on
// one order never blocks its siblings.
//
// Two transitions carry side effects:
//   - a restoring transition (back to Waiting, or a cancellation out of
//     Waiting/Preparing) credits the order's materials back to the ledger,
//     gated by the order's stock-restored flag so a replayed cancellation
//     cannot double-credit
//   - Preparing→ReadyToShip runs the fulfillment router, which reads the
//     day's confirmed vendor allocations and writes the route decision
//     onto the order
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	catalog    ports.ProductCatalog
	router     services.FulfillmentRouter
}

// NewChangeOrderStatusCommandHandler creates a handler for bulk status
// transitions. Requires a UoWFactory spanning orders, stock, and
// allocations, plus the product catalog for restore credits.
func NewChangeOrderStatusCommandHandler(
	uowFactory UoWFactory,
	catalog ports.ProductCatalog,
	router services.FulfillmentRouter,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		router:     router,
	}
}

// Handle processes the bulk transition, one transaction per order, and
// returns the per-order outcomes. A concurrency conflict on an order is
// retried once before it is reported as failed.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (ChangeOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	result := ChangeOrderStatusResult{}
	for _, orderID := range cmd.OrderIDs() {
		err := withConflictRetry(func() error {
			return h.transitionOne(ctx, cmd, orderID)
		})
		if err != nil {
			result.Failed = append(result.Failed, OrderFailure{OrderID: orderID, Reason: err.Error()})
			continue
		}
		result.Succeeded = append(result.Succeeded, orderID)
	}

	return result, nil
}

func (h *ChangeOrderStatusCommandHandler) transitionOne(ctx context.Context, cmd ChangeOrderStatusCommand, orderID kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	needsRestore := o.NeedsStockRestore(cmd.Target())

	if err := h.applyTransition(ctx, uow, o, cmd.Target()); err != nil {
		return err
	}

	if needsRestore {
		if err := h.restoreStock(ctx, uow, o, cmd.ActorID()); err != nil {
			return err
		}
	}

	if err := orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *ChangeOrderStatusCommandHandler) applyTransition(ctx context.Context, uow UoW, o *order.Order, target order.Status) error {
	switch target {
	case order.Waiting:
		return o.ReturnToWaiting()
	case order.Preparing:
		return o.StartPreparing()
	case order.ReadyToShip:
		return h.route(ctx, uow, o)
	case order.Shipping:
		return o.Ship()
	case order.Delivered:
		return o.Deliver()
	default:
		return o.Cancel(target)
	}
}

// route collects the vendor capacities for the order's product and today's
// supply date and lets the fulfillment router pick the route.
func (h *ChangeOrderStatusCommandHandler) route(ctx context.Context, uow UoW, o *order.Order) error {
	date := time.Now().UTC()

	allocations, err := uow.AllocationRepository().GetConfirmedForProductDate(ctx, o.ProductCode(), date)
	if err != nil {
		return err
	}

	capacities := make([]services.VendorCapacity, 0, len(allocations))
	for _, a := range allocations {
		routed, err := uow.OrderRepository().CountRoutedToVendor(ctx, a.VendorID(), date)
		if err != nil {
			return err
		}

		capacities = append(capacities, services.VendorCapacity{
			VendorID:          a.VendorID(),
			ConfirmedQuantity: a.ConfirmedQuantity(),
			RoutedQuantity:    routed,
		})
	}

	return h.router.Route(o, capacities)
}

// restoreStock credits the order's materials back to the ledger and flips
// the order's stock-restored flag. The flag check makes replays no-ops.
func (h *ChangeOrderStatusCommandHandler) restoreStock(ctx context.Context, uow UoW, o *order.Order, actorID string) error {
	materials, err := h.catalog.MaterialsFor(ctx, o.ProductCode())
	if err != nil {
		return err
	}

	if err := creditMaterials(ctx, uow.StockRepository(), o, materials, actorID); err != nil {
		return err
	}

	o.MarkStockRestored(time.Now().UTC())
	return nil
}
