package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// GetActiveOrdersQueryHandler lists in-flight orders from the database.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order
// listings. Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the listing, oldest orders first so the operations queue
// reads top-down.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			id,
			external_order_number,
			product_code,
			quantity,
			recipient_name,
			status,
			fulfillment_type,
			vendor_id,
			tracking_number,
			courier_company,
			created_at
		FROM orders
		WHERE status NOT IN (?, ?, ?)`
	args := []any{
		order.Delivered.String(),
		order.AdminCancelled.String(),
		order.MemberCancelled.String(),
	}

	if query.Status() != nil {
		sqlText += " AND status = ?"
		args = append(args, query.Status().String())
	}
	sqlText += " ORDER BY created_at, id"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetActiveOrdersQueryResponse, 0)
	for rows.Next() {
		o, scanErr := scanActiveOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func scanActiveOrder(rows *sql.Rows) (GetActiveOrdersQueryResponse, error) {
	var (
		response  GetActiveOrdersQueryResponse
		id        uuid.UUID
		vendorID  uuid.NullUUID
		createdAt time.Time
	)

	if err := rows.Scan(
		&id,
		&response.ExternalOrderNumber,
		&response.ProductCode,
		&response.Quantity,
		&response.RecipientName,
		&response.Status,
		&response.FulfillmentType,
		&vendorID,
		&response.TrackingNumber,
		&response.CourierCompany,
		&createdAt,
	); err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}
	response.ID = orderID

	if vendorID.Valid {
		vID, idErr := kernel.UUIDFromBytes(vendorID.UUID[:])
		if idErr != nil {
			return GetActiveOrdersQueryResponse{}, idErr
		}
		response.VendorID = &vID
	}

	response.CreatedAt = createdAt
	return response, nil
}
