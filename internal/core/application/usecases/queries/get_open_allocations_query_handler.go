package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
)

// GetOpenAllocationsQueryHandler lists unsettled negotiations from the
// database.
type GetOpenAllocationsQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenAllocationsQueryHandler creates a handler for open allocation
// listings. Requires a GORM database connection for query execution.
func NewGetOpenAllocationsQueryHandler(db *gorm.DB) GetOpenAllocationsQueryHandler {
	return GetOpenAllocationsQueryHandler{db: db}
}

// Handle executes the listing, ordered by supply date so the nearest
// deadlines come first.
func (h GetOpenAllocationsQueryHandler) Handle(
	ctx context.Context,
	query GetOpenAllocationsQuery,
) ([]GetOpenAllocationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			id,
			date,
			product_code,
			vendor_id,
			requested_quantity,
			confirmed_quantity,
			memo,
			status,
			created_at
		FROM allocations
		WHERE status IN (?, ?, ?)`
	args := []any{
		allocation.StatusPending.String(),
		allocation.StatusNotified.String(),
		allocation.StatusResponded.String(),
	}

	if query.VendorID() != nil {
		sqlText += " AND vendor_id = ?"
		args = append(args, query.VendorID().Bytes())
	}
	sqlText += " ORDER BY date, created_at"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	allocations := make([]GetOpenAllocationsQueryResponse, 0)
	for rows.Next() {
		a, scanErr := scanOpenAllocation(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		allocations = append(allocations, a)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return allocations, nil
}

func scanOpenAllocation(rows *sql.Rows) (GetOpenAllocationsQueryResponse, error) {
	var (
		response  GetOpenAllocationsQueryResponse
		id        uuid.UUID
		vendorID  uuid.UUID
		date      time.Time
		createdAt time.Time
	)

	if err := rows.Scan(
		&id,
		&date,
		&response.ProductCode,
		&vendorID,
		&response.RequestedQuantity,
		&response.ConfirmedQuantity,
		&response.Memo,
		&response.Status,
		&createdAt,
	); err != nil {
		return GetOpenAllocationsQueryResponse{}, err
	}

	allocationID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOpenAllocationsQueryResponse{}, err
	}
	response.ID = allocationID

	vID, err := kernel.UUIDFromBytes(vendorID[:])
	if err != nil {
		return GetOpenAllocationsQueryResponse{}, err
	}
	response.VendorID = vID

	response.Date = date
	response.CreatedAt = createdAt
	return response, nil
}
