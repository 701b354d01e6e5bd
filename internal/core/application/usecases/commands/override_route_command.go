package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrOverrideRouteCommandIsNotConstructed = errors.New(
	"OverrideRouteCommand must be created via NewOverrideRouteCommand constructor",
)

// OverrideRouteCommand represents an admin replacing the fulfillment
// router's decision on one order. The only way a routed order changes its
// route before shipping.
type OverrideRouteCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	fulfillmentType order.FulfillmentType
	vendorID        *kernel.UUID
	actorID         string

	guard guard.ConstructorGuard
}

// NewOverrideRouteCommand creates a command to override an order's route.
// Validates the order id and the route shape: a vendor route needs a
// vendor id, a self route must not carry one.
func NewOverrideRouteCommand(
	orderID kernel.UUID,
	fulfillmentType order.FulfillmentType,
	vendorID *kernel.UUID,
	actorID string,
) (OverrideRouteCommand, error) {
	cmd := OverrideRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRoute(fulfillmentType, vendorID),
		cmd.setActorID(actorID),
	); err != nil {
		return OverrideRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OverrideRouteCommand) Validate() error {
	return c.guard.Validate(ErrOverrideRouteCommandIsNotConstructed)
}

// OrderID returns the order whose route is overridden.
func (c OverrideRouteCommand) OrderID() kernel.UUID {
	return c.orderID
}

// FulfillmentType returns the route the order should take.
func (c OverrideRouteCommand) FulfillmentType() order.FulfillmentType {
	return c.fulfillmentType
}

// VendorID returns the vendor for a vendor route, nil for self.
func (c OverrideRouteCommand) VendorID() *kernel.UUID {
	return c.vendorID
}

// ActorID returns the identifier of the overriding admin.
func (c OverrideRouteCommand) ActorID() string {
	return c.actorID
}

func (c *OverrideRouteCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *OverrideRouteCommand) setRoute(ft order.FulfillmentType, vendorID *kernel.UUID) error {
	if err := ft.Validate(); err != nil {
		return err
	}
	if ft == order.FulfillmentVendor {
		if vendorID == nil {
			return errs.NewValueIsRequiredError("vendorID")
		}
		if err := vendorID.Validate(); err != nil {
			return err
		}
	}
	if ft == order.FulfillmentSelf && vendorID != nil {
		return errs.NewValueIsInvalidError("vendorID must be empty for self fulfillment")
	}

	c.fulfillmentType = ft
	c.vendorID = vendorID
	return nil
}

func (c *OverrideRouteCommand) setActorID(actorID string) error {
	if actorID == "" {
		return ErrActorIDIsRequired
	}

	c.actorID = actorID
	return nil
}
