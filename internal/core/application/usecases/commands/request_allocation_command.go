package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRequestAllocationCommandIsNotConstructed = errors.New(
		"RequestAllocationCommand must be created via NewRequestAllocationCommand constructor",
	)
	ErrRequestedQuantityIsInvalid = errors.New("requested quantity must be greater than 0")
)

// RequestAllocationCommand represents an operator asking a vendor how many
// units of a product it can supply on a given date.
type RequestAllocationCommand struct { //nolint:recvcheck //using for validation
	date              time.Time
	productCode       string
	vendorID          kernel.UUID
	requestedQuantity int
	actorID           string

	guard guard.ConstructorGuard
}

// NewRequestAllocationCommand creates a command to open an allocation
// negotiation. Validates that the product and vendor are identified, the
// date is set, and the requested quantity is positive.
func NewRequestAllocationCommand(
	date time.Time,
	productCode string,
	vendorID kernel.UUID,
	requestedQuantity int,
	actorID string,
) (RequestAllocationCommand, error) {
	cmd := RequestAllocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDate(date),
		cmd.setProductCode(productCode),
		cmd.setVendorID(vendorID),
		cmd.setRequestedQuantity(requestedQuantity),
		cmd.setActorID(actorID),
	); err != nil {
		return RequestAllocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestAllocationCommand) Validate() error {
	return c.guard.Validate(ErrRequestAllocationCommandIsNotConstructed)
}

// Date returns the supply date the request is for.
func (c RequestAllocationCommand) Date() time.Time {
	return c.date
}

// ProductCode returns the product the request is for.
func (c RequestAllocationCommand) ProductCode() string {
	return c.productCode
}

// VendorID returns the vendor being asked.
func (c RequestAllocationCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// RequestedQuantity returns the quantity being asked for.
func (c RequestAllocationCommand) RequestedQuantity() int {
	return c.requestedQuantity
}

// ActorID returns the identifier of the requesting operator.
func (c RequestAllocationCommand) ActorID() string {
	return c.actorID
}

func (c *RequestAllocationCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}

	c.date = date
	return nil
}

func (c *RequestAllocationCommand) setProductCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("productCode")
	}

	c.productCode = code
	return nil
}

func (c *RequestAllocationCommand) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.vendorID = id
	return nil
}

func (c *RequestAllocationCommand) setRequestedQuantity(q int) error {
	if q <= 0 {
		return ErrRequestedQuantityIsInvalid
	}

	c.requestedQuantity = q
	return nil
}

func (c *RequestAllocationCommand) setActorID(actorID string) error {
	if actorID == "" {
		return ErrActorIDIsRequired
	}

	c.actorID = actorID
	return nil
}
