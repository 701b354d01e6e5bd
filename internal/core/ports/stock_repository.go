package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/stock"
)

// StockRepository defines the persistence contract for the inventory ledger.
// It is the only component allowed to write item balances and stock
// movements; every other component goes through it.
type StockRepository interface {
	// GetBalanceForUpdate loads the balance of an item and takes an
	// exclusive row lock on it for the duration of the surrounding
	// transaction, serializing check-then-deduct sequences per item.
	GetBalanceForUpdate(ctx context.Context, itemCode string) (*stock.Balance, error)

	// GetBalance loads the balance of an item without locking.
	GetBalance(ctx context.Context, itemCode string) (*stock.Balance, error)

	// AddBalance persists a balance for an item that has no ledger history.
	AddBalance(ctx context.Context, balance *stock.Balance) error

	// SaveBalance persists a mutated balance. Fails with a concurrency
	// conflict when the persisted version moved underneath the caller.
	SaveBalance(ctx context.Context, balance *stock.Balance) error

	// AppendMovement appends one entry to the movement log. Movements are
	// immutable once written.
	AppendMovement(ctx context.Context, movement stock.Movement) error
}
