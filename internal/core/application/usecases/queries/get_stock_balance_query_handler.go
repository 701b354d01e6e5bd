package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"fulfillment/internal/pkg/errs"
)

// GetStockBalanceQueryHandler reads one item balance from the database.
type GetStockBalanceQueryHandler struct {
	db *gorm.DB
}

// NewGetStockBalanceQueryHandler creates a handler for balance lookups.
// Requires a GORM database connection for query execution.
func NewGetStockBalanceQueryHandler(db *gorm.DB) GetStockBalanceQueryHandler {
	return GetStockBalanceQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ErrObjectNotFound when the item
// has no ledger history.
func (h GetStockBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetStockBalanceQuery,
) (GetStockBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStockBalanceQueryResponse{}, err
	}

	var response GetStockBalanceQueryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			item_kind,
			item_code,
			quantity,
			updated_at
		FROM stock_balances
		WHERE item_code = ?
	`, query.ItemCode()).Row()

	err := row.Scan(&response.ItemKind, &response.ItemCode, &response.Quantity, &response.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetStockBalanceQueryResponse{}, errs.NewObjectNotFoundError("itemCode", query.ItemCode())
	}
	if err != nil {
		return GetStockBalanceQueryResponse{}, err
	}

	return response, nil
}
