package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAdjustStockCommandIsNotConstructed = errors.New(
		"AdjustStockCommand must be created via NewAdjustStockCommand constructor",
	)
	ErrDeltaIsZero      = errors.New("delta must not be zero")
	ErrReasonIsRequired = errors.New("reason is required")
)

// AdjustStockCommand represents a manual correction of one item balance,
// e.g. after a physical count or a damaged-goods write-off. Manual
// adjustments always carry a reason; the movement log keeps it.
type AdjustStockCommand struct { //nolint:recvcheck //using for validation
	itemKind      stock.ItemKind
	itemCode      string
	delta         int
	reason        string
	allowNegative bool
	actorID       string

	guard guard.ConstructorGuard
}

// NewAdjustStockCommand creates a command to adjust an item balance.
// Validates that the item is identified, the delta is non-zero, and a
// reason and actor are given. allowNegative lets an operator knowingly
// push a balance below zero, e.g. to record a known shortage.
func NewAdjustStockCommand(
	itemKind stock.ItemKind,
	itemCode string,
	delta int,
	reason string,
	allowNegative bool,
	actorID string,
) (AdjustStockCommand, error) {
	cmd := AdjustStockCommand{
		allowNegative: allowNegative,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemKind(itemKind),
		cmd.setItemCode(itemCode),
		cmd.setDelta(delta),
		cmd.setReason(reason),
		cmd.setActorID(actorID),
	); err != nil {
		return AdjustStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustStockCommand) Validate() error {
	return c.guard.Validate(ErrAdjustStockCommandIsNotConstructed)
}

// ItemKind returns the kind of the item being adjusted.
func (c AdjustStockCommand) ItemKind() stock.ItemKind {
	return c.itemKind
}

// ItemCode returns the code of the item being adjusted.
func (c AdjustStockCommand) ItemCode() string {
	return c.itemCode
}

// Delta returns the signed quantity change.
func (c AdjustStockCommand) Delta() int {
	return c.delta
}

// Reason returns the operator's justification for the correction.
func (c AdjustStockCommand) Reason() string {
	return c.reason
}

// AllowNegative reports whether the balance may go below zero.
func (c AdjustStockCommand) AllowNegative() bool {
	return c.allowNegative
}

// ActorID returns the identifier of the adjusting operator.
func (c AdjustStockCommand) ActorID() string {
	return c.actorID
}

func (c *AdjustStockCommand) setItemKind(kind stock.ItemKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.itemKind = kind
	return nil
}

func (c *AdjustStockCommand) setItemCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("itemCode")
	}

	c.itemCode = code
	return nil
}

func (c *AdjustStockCommand) setDelta(delta int) error {
	if delta == 0 {
		return ErrDeltaIsZero
	}

	c.delta = delta
	return nil
}

func (c *AdjustStockCommand) setReason(reason string) error {
	if reason == "" {
		return ErrReasonIsRequired
	}

	c.reason = reason
	return nil
}

func (c *AdjustStockCommand) setActorID(actorID string) error {
	if actorID == "" {
		return ErrActorIDIsRequired
	}

	c.actorID = actorID
	return nil
}
