package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOpenAllocationsQueryIsNotConstructed = errors.New(
	"GetOpenAllocationsQuery must be created via NewGetOpenAllocationsQuery constructor",
)

// GetOpenAllocationsQuery retrieves allocation negotiations that have not
// settled yet (pending, notified, or responded). An optional vendor id
// narrows the listing to one vendor's open requests.
type GetOpenAllocationsQuery struct {
	vendorID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOpenAllocationsQuery creates a query for open negotiations. Pass
// nil to list across all vendors.
func NewGetOpenAllocationsQuery(vendorID *kernel.UUID) (GetOpenAllocationsQuery, error) {
	if vendorID != nil {
		if err := vendorID.Validate(); err != nil {
			return GetOpenAllocationsQuery{}, err
		}
	}

	return GetOpenAllocationsQuery{
		vendorID: vendorID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOpenAllocationsQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenAllocationsQueryIsNotConstructed)
}

// VendorID returns the optional vendor filter.
func (q GetOpenAllocationsQuery) VendorID() *kernel.UUID {
	return q.vendorID
}

// GetOpenAllocationsQueryResponse is one open negotiation in the listing.
type GetOpenAllocationsQueryResponse struct {
	ID                kernel.UUID
	Date              time.Time
	ProductCode       string
	VendorID          kernel.UUID
	RequestedQuantity int
	ConfirmedQuantity int
	Memo              string
	Status            string
	CreatedAt         time.Time
}
