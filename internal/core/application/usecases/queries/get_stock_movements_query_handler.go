package queries

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
)

// GetStockMovementsQueryHandler lists the movement log straight from the
// database. The log is append-only, so reading outside a transaction is
// safe.
type GetStockMovementsQueryHandler struct {
	db *gorm.DB
}

// NewGetStockMovementsQueryHandler creates a handler for movement log
// listings. Requires a GORM database connection for query execution.
func NewGetStockMovementsQueryHandler(db *gorm.DB) GetStockMovementsQueryHandler {
	return GetStockMovementsQueryHandler{db: db}
}

// Handle executes the listing: one count query for the total and one page
// query, newest movements first.
func (h GetStockMovementsQueryHandler) Handle(
	ctx context.Context,
	query GetStockMovementsQuery,
) (GetStockMovementsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStockMovementsQueryResponse{}, err
	}

	where, args := buildMovementFilter(query.Filter())

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM stock_movements"+where, args...).
		Scan(&total).Error; err != nil {
		return GetStockMovementsQueryResponse{}, err
	}

	pageArgs := append(args, query.PageSize(), (query.Page()-1)*query.PageSize())
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			item_kind,
			item_code,
			delta,
			before_balance,
			after_balance,
			action_kind,
			source,
			related_order_id,
			actor_id,
			reason,
			created_at
		FROM stock_movements`+where+`
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return GetStockMovementsQueryResponse{}, err
	}
	defer rows.Close()

	movements := make([]StockMovementResponse, 0, query.PageSize())
	for rows.Next() {
		movement, scanErr := scanMovement(rows)
		if scanErr != nil {
			return GetStockMovementsQueryResponse{}, scanErr
		}
		movements = append(movements, movement)
	}

	if err = rows.Err(); err != nil {
		return GetStockMovementsQueryResponse{}, err
	}

	return GetStockMovementsQueryResponse{Movements: movements, Total: total}, nil
}

// buildMovementFilter translates the filter into a WHERE clause. Only set
// fields contribute conditions.
func buildMovementFilter(f StockMovementFilter) (string, []any) {
	conditions := make([]string, 0, 7)
	args := make([]any, 0, 8)

	if f.ItemKind != "" {
		conditions = append(conditions, "item_kind = ?")
		args = append(args, f.ItemKind)
	}
	if f.ActionKind != "" {
		conditions = append(conditions, "action_kind = ?")
		args = append(args, f.ActionKind)
	}
	if f.Source != "" {
		conditions = append(conditions, "source = ?")
		args = append(args, f.Source)
	}
	if f.ActorID != "" {
		conditions = append(conditions, "actor_id = ?")
		args = append(args, f.ActorID)
	}
	if !f.From.IsZero() {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, f.From)
	}
	if !f.To.IsZero() {
		conditions = append(conditions, "created_at < ?")
		args = append(args, f.To)
	}
	if f.Keyword != "" {
		conditions = append(conditions, "(item_code ILIKE ? OR reason ILIKE ?)")
		pattern := "%" + f.Keyword + "%"
		args = append(args, pattern, pattern)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func scanMovement(rows *sql.Rows) (StockMovementResponse, error) {
	var (
		movement       StockMovementResponse
		id             uuid.UUID
		relatedOrderID uuid.NullUUID
		createdAt      time.Time
	)

	if err := rows.Scan(
		&id,
		&movement.ItemKind,
		&movement.ItemCode,
		&movement.Delta,
		&movement.BeforeBalance,
		&movement.AfterBalance,
		&movement.ActionKind,
		&movement.Source,
		&relatedOrderID,
		&movement.ActorID,
		&movement.Reason,
		&createdAt,
	); err != nil {
		return StockMovementResponse{}, err
	}

	movementID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return StockMovementResponse{}, err
	}
	movement.ID = movementID

	if relatedOrderID.Valid {
		orderID, idErr := kernel.UUIDFromBytes(relatedOrderID.UUID[:])
		if idErr != nil {
			return StockMovementResponse{}, idErr
		}
		movement.RelatedOrderID = &orderID
	}

	movement.CreatedAt = createdAt
	return movement, nil
}
