package commands

import (
	"context"
	"errors"
	"sort"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// sortedRequirements returns the bill of materials in item-code order.
// All handlers lock balance rows in this order to avoid deadlocks between
// concurrent bulk operations touching the same materials.
func sortedRequirements(requirements []ports.MaterialRequirement) []ports.MaterialRequirement {
	sorted := make([]ports.MaterialRequirement, len(requirements))
	copy(sorted, requirements)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MaterialCode < sorted[j].MaterialCode
	})
	return sorted
}

// reserveMaterials debits every material the order consumes inside the
// caller's transaction. Fails with InsufficientStockError on the first
// material that cannot cover the order, leaving the rollback to the caller.
func reserveMaterials(ctx context.Context, repo ports.StockRepository, o *order.Order,
	requirements []ports.MaterialRequirement, actorID string) error {
	for _, req := range sortedRequirements(requirements) {
		balance, err := repo.GetBalanceForUpdate(ctx, req.MaterialCode)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return errs.NewInsufficientStockError(req.MaterialCode, req.UnitsPerOrder*o.Quantity(), 0)
			}
			return err
		}

		movement, err := balance.Reserve(req.UnitsPerOrder*o.Quantity(), o.ID(), actorID)
		if err != nil {
			return err
		}

		if err := repo.SaveBalance(ctx, balance); err != nil {
			return err
		}
		if err := repo.AppendMovement(ctx, movement); err != nil {
			return err
		}
	}
	return nil
}

// creditMaterials returns the order's consumed materials to the ledger.
// Used by restoring transitions (ReturnToWaiting, cancellations).
func creditMaterials(ctx context.Context, repo ports.StockRepository, o *order.Order,
	requirements []ports.MaterialRequirement, actorID string) error {
	for _, req := range sortedRequirements(requirements) {
		balance, err := repo.GetBalanceForUpdate(ctx, req.MaterialCode)
		if err != nil {
			return err
		}

		movement, err := balance.Credit(req.UnitsPerOrder*o.Quantity(), o.ID(), actorID)
		if err != nil {
			return err
		}

		if err := repo.SaveBalance(ctx, balance); err != nil {
			return err
		}
		if err := repo.AppendMovement(ctx, movement); err != nil {
			return err
		}
	}
	return nil
}

// withConflictRetry runs op and retries it exactly once when the optimistic
// concurrency check rejects the first attempt.
func withConflictRetry(op func() error) error {
	err := op()
	if err != nil && errors.Is(err, errs.ErrConcurrencyConflict) {
		return op()
	}
	return err
}
