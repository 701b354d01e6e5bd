package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetActiveByExternalNumbers returns the external order numbers from the
	// given set that belong to non-cancelled orders. Used by the ingestion
	// pipeline for duplicate detection.
	GetActiveByExternalNumbers(ctx context.Context, numbers []string) (map[string]bool, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// CountRoutedToVendor returns the total quantity of orders already routed
	// to the vendor for deliveries created on the given day. Feeds the
	// fulfillment router's headroom computation.
	CountRoutedToVendor(ctx context.Context, vendorID kernel.UUID, date time.Time) (int, error)
}
