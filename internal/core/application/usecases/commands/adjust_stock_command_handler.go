package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// AdjustStockCommandHandler applies a manual balance correction under an
// exclusive row lock. Adjusting an item with no ledger history creates its
// balance row, so goods receipts for new items need no extra step.
type AdjustStockCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewAdjustStockCommandHandler creates a handler for manual stock
// adjustments. Requires a StockUoWFactory for transactional persistence.
func NewAdjustStockCommandHandler(uowFactory StockUoWFactory) AdjustStockCommandHandler {
	return AdjustStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the adjustment. The balance mutation and its movement
// commit as one unit; a concurrency conflict is retried once.
func (h *AdjustStockCommandHandler) Handle(ctx context.Context, cmd AdjustStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return withConflictRetry(func() error {
		return h.adjust(ctx, cmd)
	})
}

func (h *AdjustStockCommandHandler) adjust(ctx context.Context, cmd AdjustStockCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stockRepo := uow.StockRepository()

	balance, fresh, err := h.loadOrCreateBalance(ctx, stockRepo, cmd)
	if err != nil {
		return err
	}

	movement, err := balance.Adjust(cmd.Delta(), cmd.Reason(), cmd.ActorID(), cmd.AllowNegative())
	if err != nil {
		return err
	}

	if fresh {
		err = stockRepo.AddBalance(ctx, balance)
	} else {
		err = stockRepo.SaveBalance(ctx, balance)
	}
	if err != nil {
		return err
	}

	if err := stockRepo.AppendMovement(ctx, movement); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *AdjustStockCommandHandler) loadOrCreateBalance(
	ctx context.Context,
	repo ports.StockRepository,
	cmd AdjustStockCommand,
) (*stock.Balance, bool, error) {
	balance, err := repo.GetBalanceForUpdate(ctx, cmd.ItemCode())
	if err == nil {
		return balance, false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, err
	}

	balance, err = stock.NewBalance(cmd.ItemKind(), cmd.ItemCode(), 0)
	if err != nil {
		return nil, false, err
	}

	return balance, true, nil
}
