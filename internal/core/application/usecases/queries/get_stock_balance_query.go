package queries

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetStockBalanceQueryIsNotConstructed = errors.New(
	"GetStockBalanceQuery must be created via NewGetStockBalanceQuery constructor",
)

// GetStockBalanceQuery retrieves the current balance of one item.
type GetStockBalanceQuery struct {
	itemCode string

	guard guard.ConstructorGuard
}

// NewGetStockBalanceQuery creates a query for one item's balance.
func NewGetStockBalanceQuery(itemCode string) (GetStockBalanceQuery, error) {
	if itemCode == "" {
		return GetStockBalanceQuery{}, errs.NewValueIsRequiredError("itemCode")
	}

	return GetStockBalanceQuery{
		itemCode: itemCode,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStockBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetStockBalanceQueryIsNotConstructed)
}

// ItemCode returns the item whose balance is requested.
func (q GetStockBalanceQuery) ItemCode() string {
	return q.itemCode
}

// GetStockBalanceQueryResponse is the current ledger position of one item.
type GetStockBalanceQueryResponse struct {
	ItemKind  string
	ItemCode  string
	Quantity  int
	UpdatedAt time.Time
}
