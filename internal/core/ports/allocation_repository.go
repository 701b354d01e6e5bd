package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
)

// AllocationRepository defines the persistence contract for vendor
// allocation negotiations.
type AllocationRepository interface {
	// Add persists a new allocation aggregate to storage.
	Add(ctx context.Context, aggregate *allocation.Allocation) error

	// Update persists changes to an existing allocation aggregate.
	Update(ctx context.Context, aggregate *allocation.Allocation) error

	// Get retrieves an allocation aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*allocation.Allocation, error)

	// GetAllInStatus retrieves all allocations currently in the given status.
	// Used by the notification retry job to find pending allocations.
	GetAllInStatus(ctx context.Context, status allocation.Status) ([]*allocation.Allocation, error)

	// GetConfirmedForProductDate retrieves the confirmed allocations for a
	// product and supply date. Feeds the fulfillment router.
	GetConfirmedForProductDate(ctx context.Context, productCode string, date time.Time) ([]*allocation.Allocation, error)

	// GetOpenForRequest retrieves the non-terminal allocation for the
	// (product, vendor, date) request key, or errs.ErrObjectNotFound when
	// none exists. Makes repeated identical requests return the same
	// negotiation instead of opening a second one.
	GetOpenForRequest(ctx context.Context, productCode string, vendorID kernel.UUID, date time.Time) (*allocation.Allocation, error)
}
