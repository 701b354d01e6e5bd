package services

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// VendorCapacity is the router's view of one vendor's allocation for a
// product and date: the quantity the vendor confirmed and the quantity
// already routed to it.
type VendorCapacity struct {
	VendorID          kernel.UUID
	ConfirmedQuantity int
	RoutedQuantity    int
}

// Headroom returns the remaining capacity the vendor can absorb.
func (c VendorCapacity) Headroom() int {
	return c.ConfirmedQuantity - c.RoutedQuantity
}

// FulfillmentRouter is a domain service that decides, at
// Preparing→ReadyToShip, whether an order ships through the platform's own
// operations or an external vendor partner.
//
// Business rules:
//   - A vendor is eligible when its headroom (confirmed minus already
//     routed) covers the order quantity
//   - Among eligible vendors the one with the most headroom wins, keeping
//     load spread across partners
//   - Without an eligible vendor the order falls back to self fulfillment
//   - Routing never mutates stock; material stock is vendor-agnostic
//
// The decision is written onto the order and stays stable; only an explicit
// admin override changes it afterwards.
type FulfillmentRouter struct{}

// NewFulfillmentRouter creates a new FulfillmentRouter instance.
func NewFulfillmentRouter() FulfillmentRouter {
	return FulfillmentRouter{}
}

// Route picks a fulfillment route for the order and executes the
// Preparing→ReadyToShip transition with the decision attached.
//
// Parameters:
//   - o: the order to route (must be valid and in Preparing status)
//   - capacities: vendor capacities for the order's product and date
//
// Returns an error when the order is invalid or the transition is not
// allowed; in that case the order is left unchanged.
func (r FulfillmentRouter) Route(o *order.Order, capacities []VendorCapacity) error {
	if err := o.Validate(); err != nil {
		return err
	}

	best := -1
	for i, c := range capacities {
		if c.Headroom() < o.Quantity() {
			continue
		}
		if best == -1 || c.Headroom() > capacities[best].Headroom() {
			best = i
		}
	}

	if best == -1 {
		return o.AssignRoute(order.FulfillmentSelf, nil)
	}

	vendorID := capacities[best].VendorID
	return o.AssignRoute(order.FulfillmentVendor, &vendorID)
}
