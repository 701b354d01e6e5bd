package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves orders that are still in flight, i.e. not
// delivered and not cancelled. An optional status narrows the listing to
// one workflow stage.
type GetActiveOrdersQuery struct {
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for in-flight orders. Pass nil
// to list every active order regardless of stage.
func NewGetActiveOrdersQuery(status *order.Status) (GetActiveOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetActiveOrdersQuery{}, err
		}
	}

	return GetActiveOrdersQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// Status returns the optional stage filter.
func (q GetActiveOrdersQuery) Status() *order.Status {
	return q.status
}

// GetActiveOrdersQueryResponse is one in-flight order in the listing.
type GetActiveOrdersQueryResponse struct {
	ID                  kernel.UUID
	ExternalOrderNumber string
	ProductCode         string
	Quantity            int
	RecipientName       string
	Status              string
	FulfillmentType     string
	VendorID            *kernel.UUID
	TrackingNumber      string
	CourierCompany      string
	CreatedAt           time.Time
}
