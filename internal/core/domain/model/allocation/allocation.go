package allocation

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrAllocationIsNotConstructed is returned when an Allocation instance was
// not created through NewAllocation or RestoreAllocation.
var ErrAllocationIsNotConstructed = errors.New("Allocation must be created via NewAllocation or RestoreAllocation")

// Allocation is the aggregate for one vendor forecast negotiation: the
// platform requests an expected supply quantity for a product on a date,
// the vendor responds with what it can actually provide, and the platform
// confirms or rejects the response.
//
// Invariants:
//   - requestedQuantity is positive
//   - confirmedQuantity is never negative; it has no upper bound relative
//     to requestedQuantity
//   - re-responding overwrites confirmedQuantity (last write wins, never
//     additive)
//   - confirm/reject are idempotent in their own terminal state
//
// Allocations never touch stock; confirmed quantities only feed the
// fulfillment router's vendor headroom computation.
type Allocation struct {
	id                kernel.UUID
	date              time.Time
	productCode       string
	vendorID          kernel.UUID
	requestedQuantity int

	confirmedQuantity int
	memo              string
	status            Status

	notifiedAt  *time.Time
	respondedAt *time.Time
	confirmedAt *time.Time
	createdAt   time.Time

	isConstructed bool
}

// NewAllocation creates a pending allocation request. The caller notifies
// the vendor and marks the aggregate notified in the same operation; on a
// dispatch failure the allocation stays pending for the retry job.
func NewAllocation(
	id kernel.UUID,
	date time.Time,
	productCode string,
	vendorID kernel.UUID,
	requestedQuantity int,
) (*Allocation, error) {
	a := &Allocation{
		status:        StatusPending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setDate(date),
		a.setProductCode(productCode),
		a.setVendorID(vendorID),
		a.setRequestedQuantity(requestedQuantity),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreParams carries every persisted field needed to rehydrate an
// Allocation from storage. Used only by repository implementations.
type RestoreParams struct {
	ID                kernel.UUID
	Date              time.Time
	ProductCode       string
	VendorID          kernel.UUID
	RequestedQuantity int
	ConfirmedQuantity int
	Memo              string
	Status            Status
	NotifiedAt        *time.Time
	RespondedAt       *time.Time
	ConfirmedAt       *time.Time
	CreatedAt         time.Time
}

// RestoreAllocation reconstructs an Allocation from persistence.
func RestoreAllocation(p RestoreParams) (*Allocation, error) {
	if err := errors.Join(p.ID.Validate(), p.VendorID.Validate(), p.Status.Validate()); err != nil {
		return nil, err
	}

	return &Allocation{
		id:                p.ID,
		date:              p.Date,
		productCode:       p.ProductCode,
		vendorID:          p.VendorID,
		requestedQuantity: p.RequestedQuantity,
		confirmedQuantity: p.ConfirmedQuantity,
		memo:              p.Memo,
		status:            p.Status,
		notifiedAt:        p.NotifiedAt,
		respondedAt:       p.RespondedAt,
		confirmedAt:       p.ConfirmedAt,
		createdAt:         p.CreatedAt,
		isConstructed:     true,
	}, nil
}

// Validate ensures the Allocation instance was properly constructed.
func (a *Allocation) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAllocationIsNotConstructed
	}
	return nil
}

// ID returns the allocation's unique identifier.
func (a *Allocation) ID() kernel.UUID {
	return a.id
}

// Date returns the supply date the forecast covers.
func (a *Allocation) Date() time.Time {
	return a.date
}

// ProductCode returns the product the forecast covers.
func (a *Allocation) ProductCode() string {
	return a.productCode
}

// VendorID returns the vendor being negotiated with.
func (a *Allocation) VendorID() kernel.UUID {
	return a.vendorID
}

// RequestedQuantity returns the platform's forecast quantity.
func (a *Allocation) RequestedQuantity() int {
	return a.requestedQuantity
}

// ConfirmedQuantity returns the vendor's latest reported quantity.
func (a *Allocation) ConfirmedQuantity() int {
	return a.confirmedQuantity
}

// Memo returns the vendor's memo from its latest response.
func (a *Allocation) Memo() string {
	return a.memo
}

// Status returns the negotiation status.
func (a *Allocation) Status() Status {
	return a.status
}

// NotifiedAt returns when the vendor was notified, or nil.
func (a *Allocation) NotifiedAt() *time.Time {
	return a.notifiedAt
}

// RespondedAt returns when the vendor last responded, or nil.
func (a *Allocation) RespondedAt() *time.Time {
	return a.respondedAt
}

// ConfirmedAt returns when the response was confirmed, or nil.
func (a *Allocation) ConfirmedAt() *time.Time {
	return a.confirmedAt
}

// CreatedAt returns the creation timestamp.
func (a *Allocation) CreatedAt() time.Time {
	return a.createdAt
}

// MarkNotified records that the vendor was informed of the request.
// Idempotent: notifying an already-notified allocation changes nothing, so
// the retry job can safely re-drive pending allocations.
func (a *Allocation) MarkNotified(at time.Time) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.status == StatusNotified {
		return nil
	}
	if a.status != StatusPending {
		return errs.NewInvalidTransitionError(a.status.String(), StatusNotified.String())
	}

	a.status = StatusNotified
	t := at.UTC()
	a.notifiedAt = &t
	return nil
}

// Respond records the vendor's available quantity and memo.
// Legal from notified and from responded: a repeated response overwrites
// the previous quantity (last write wins), it never accumulates.
func (a *Allocation) Respond(availableQuantity int, memo string, at time.Time) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if availableQuantity < 0 {
		return errs.NewValueIsOutOfRangeError("availableQuantity", availableQuantity, 0, "unbounded")
	}
	if a.status != StatusNotified && a.status != StatusResponded {
		return errs.NewInvalidTransitionError(a.status.String(), StatusResponded.String())
	}

	a.status = StatusResponded
	a.confirmedQuantity = availableQuantity
	a.memo = memo
	t := at.UTC()
	a.respondedAt = &t
	return nil
}

// Confirm accepts the vendor's response, settling the negotiation.
// Confirming an already-confirmed allocation is a no-op.
func (a *Allocation) Confirm(at time.Time) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.status == StatusConfirmed {
		return nil
	}
	if a.status != StatusResponded {
		return errs.NewInvalidTransitionError(a.status.String(), StatusConfirmed.String())
	}

	a.status = StatusConfirmed
	t := at.UTC()
	a.confirmedAt = &t
	return nil
}

// Reject turns the vendor's response down, settling the negotiation.
// Rejecting an already-rejected allocation is a no-op.
func (a *Allocation) Reject() error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.status == StatusRejected {
		return nil
	}
	if a.status != StatusResponded {
		return errs.NewInvalidTransitionError(a.status.String(), StatusRejected.String())
	}

	a.status = StatusRejected
	return nil
}

func (a *Allocation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Allocation) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	a.date = date.UTC().Truncate(24 * time.Hour)
	return nil
}

func (a *Allocation) setProductCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("productCode")
	}
	a.productCode = code
	return nil
}

func (a *Allocation) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.vendorID = id
	return nil
}

func (a *Allocation) setRequestedQuantity(q int) error {
	if q <= 0 {
		return errs.NewValueIsInvalidError("requestedQuantity")
	}
	a.requestedQuantity = q
	return nil
}
