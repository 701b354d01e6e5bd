package stock

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrBalanceIsNotConstructed is returned when a Balance instance was not
// created through NewBalance or RestoreBalance.
var ErrBalanceIsNotConstructed = errors.New("Balance must be created via NewBalance or RestoreBalance")

// Balance is the aggregate owning the current quantity of one item. It is
// the sole producer of Movements: every mutation goes through Reserve,
// Credit, or Adjust, which enforce the non-negative invariant and emit the
// matching ledger entry atomically with the balance change.
//
// Invariants:
//   - quantity never goes below zero, except through Adjust with the
//     explicit allowNegative override
//   - every mutation yields exactly one Movement whose before/after
//     balances bracket the change
//
// The version field backs optimistic concurrency in the repository; the
// repository additionally takes a row lock when loading a balance for
// mutation so concurrent check-then-deduct sequences serialize per item.
type Balance struct {
	itemKind  ItemKind
	itemCode  string
	quantity  int
	version   int64
	updatedAt time.Time

	isConstructed bool
}

// NewBalance creates a balance for an item that has no ledger history yet.
// The starting quantity must not be negative.
func NewBalance(itemKind ItemKind, itemCode string, quantity int) (*Balance, error) {
	if err := itemKind.Validate(); err != nil {
		return nil, err
	}
	if itemCode == "" {
		return nil, errs.NewValueIsRequiredError("itemCode")
	}
	if quantity < 0 {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}

	return &Balance{
		itemKind:      itemKind,
		itemCode:      itemCode,
		quantity:      quantity,
		updatedAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreBalance reconstructs a balance from persistence.
func RestoreBalance(itemKind ItemKind, itemCode string, quantity int, version int64, updatedAt time.Time) (*Balance, error) {
	if err := itemKind.Validate(); err != nil {
		return nil, err
	}
	if itemCode == "" {
		return nil, errs.NewValueIsRequiredError("itemCode")
	}

	return &Balance{
		itemKind:      itemKind,
		itemCode:      itemCode,
		quantity:      quantity,
		version:       version,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Balance instance was properly constructed.
func (b *Balance) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBalanceIsNotConstructed
	}
	return nil
}

// ItemKind returns the kind of the item this balance tracks.
func (b *Balance) ItemKind() ItemKind {
	return b.itemKind
}

// ItemCode returns the code of the item this balance tracks.
func (b *Balance) ItemCode() string {
	return b.itemCode
}

// Quantity returns the current quantity.
func (b *Balance) Quantity() int {
	return b.quantity
}

// Version returns the optimistic-concurrency version counter.
func (b *Balance) Version() int64 {
	return b.version
}

// UpdatedAt returns the timestamp of the last mutation.
func (b *Balance) UpdatedAt() time.Time {
	return b.updatedAt
}

// Reserve deducts qty units for an order and emits the matching "out"
// movement with the order reference attached.
//
// Returns *errs.InsufficientStockError when the deduction would take the
// balance below zero; the balance is left unchanged and nothing may be
// persisted. Balances are never clamped.
func (b *Balance) Reserve(qty int, relatedOrderID kernel.UUID, actorID string) (Movement, error) {
	if err := b.Validate(); err != nil {
		return Movement{}, err
	}
	if qty <= 0 {
		return Movement{}, errs.NewValueIsInvalidError("qty")
	}
	if err := relatedOrderID.Validate(); err != nil {
		return Movement{}, err
	}
	if b.quantity-qty < 0 {
		return Movement{}, errs.NewInsufficientStockError(b.itemCode, qty, b.quantity)
	}

	return b.apply(-qty, ActionOut, SourceOrder, &relatedOrderID, actorID, ""), nil
}

// Credit returns qty units reserved for an order back to stock and emits
// the matching "in" movement. There is no upper bound on a balance.
func (b *Balance) Credit(qty int, relatedOrderID kernel.UUID, actorID string) (Movement, error) {
	if err := b.Validate(); err != nil {
		return Movement{}, err
	}
	if qty <= 0 {
		return Movement{}, errs.NewValueIsInvalidError("qty")
	}
	if err := relatedOrderID.Validate(); err != nil {
		return Movement{}, err
	}

	return b.apply(qty, ActionIn, SourceOrder, &relatedOrderID, actorID, ""), nil
}

// Adjust applies a manual correction outside the order coupling. The
// non-negative invariant still holds unless allowNegative is set
// explicitly by the operator.
func (b *Balance) Adjust(delta int, reason, actorID string, allowNegative bool) (Movement, error) {
	if err := b.Validate(); err != nil {
		return Movement{}, err
	}
	if delta == 0 {
		return Movement{}, errs.NewValueIsInvalidError("delta")
	}
	if reason == "" {
		return Movement{}, errs.NewValueIsRequiredError("reason")
	}
	if b.quantity+delta < 0 && !allowNegative {
		return Movement{}, errs.NewInsufficientStockError(b.itemCode, -delta, b.quantity)
	}

	return b.apply(delta, ActionAdjust, SourceManual, nil, actorID, reason), nil
}

// apply mutates the quantity and produces the ledger entry in one step so
// the two can never diverge.
func (b *Balance) apply(delta int, action ActionKind, source Source, relatedOrderID *kernel.UUID, actorID, reason string) Movement {
	before := b.quantity
	b.quantity += delta
	b.version++
	b.updatedAt = time.Now().UTC()

	return Movement{
		ID:             kernel.NewUUID(),
		ItemKind:       b.itemKind,
		ItemCode:       b.itemCode,
		Delta:          delta,
		BeforeBalance:  before,
		AfterBalance:   b.quantity,
		ActionKind:     action,
		Source:         source,
		RelatedOrderID: relatedOrderID,
		ActorID:        actorID,
		Reason:         reason,
		CreatedAt:      b.updatedAt,
	}
}
