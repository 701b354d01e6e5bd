package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// ShippingDetails carries the orderer and recipient fields of an order row.
// It is a plain value holder; required-field rules are enforced by the Order
// constructor and by the ingestion pipeline's row validation.
type ShippingDetails struct {
	OrdererName      string
	OrdererPhone     string
	RecipientName    string
	RecipientPhone   string
	RecipientAddress string
	PostalCode       string
	DeliveryMessage  string
}

// Order is the aggregate root for a unit of customer demand tracked through
// ingestion, preparation, shipping, and delivery.
//
// Invariants:
//   - Created only by the ingestion pipeline, always in Waiting status
//   - quantity is positive
//   - externalOrderNumber is unique among non-cancelled orders (enforced by
//     the ingestion pipeline together with the repository)
//   - status transitions follow the Status transition table
//   - a vendor route always carries a vendor id; a self route never does
//   - stockRestored flips to true at most once; restoring twice is a no-op
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	id                  kernel.UUID
	externalOrderNumber string
	productCode         string
	quantity            int
	details             ShippingDetails

	status          Status
	fulfillmentType FulfillmentType
	vendorID        *kernel.UUID
	routedAt        *time.Time
	trackingNumber  string
	courierCompany  string

	stockRestored   bool
	stockRestoredAt *time.Time

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Waiting status. This is the only way the
// ingestion pipeline materializes a validated order row.
//
// Validation rules:
//   - id must be a constructed UUID
//   - externalOrderNumber and productCode must be non-empty
//   - quantity must be positive
//   - recipient name and address must be non-empty
func NewOrder(
	id kernel.UUID,
	externalOrderNumber string,
	productCode string,
	quantity int,
	details ShippingDetails,
) (*Order, error) {
	o := &Order{
		status:          Waiting,
		fulfillmentType: FulfillmentUnassigned,
		createdAt:       time.Now().UTC(),
		updatedAt:       time.Now().UTC(),
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setExternalOrderNumber(externalOrderNumber),
		o.setProductCode(productCode),
		o.setQuantity(quantity),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreParams carries every persisted field needed to rehydrate an Order
// from storage. Used only by repository implementations.
type RestoreParams struct {
	ID                  kernel.UUID
	ExternalOrderNumber string
	ProductCode         string
	Quantity            int
	Details             ShippingDetails
	Status              Status
	FulfillmentType     FulfillmentType
	VendorID            *kernel.UUID
	RoutedAt            *time.Time
	TrackingNumber      string
	CourierCompany      string
	StockRestored       bool
	StockRestoredAt     *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// RestoreOrder reconstructs an Order from persistence without re-running
// creation-time rules, but still validating identity, quantity, and status.
func RestoreOrder(p RestoreParams) (*Order, error) {
	if err := errors.Join(p.ID.Validate(), p.Status.Validate()); err != nil {
		return nil, err
	}
	if p.Quantity <= 0 {
		return nil, errs.NewValueIsInvalidError("quantity")
	}

	return &Order{
		id:                  p.ID,
		externalOrderNumber: p.ExternalOrderNumber,
		productCode:         p.ProductCode,
		quantity:            p.Quantity,
		details:             p.Details,
		status:              p.Status,
		fulfillmentType:     p.FulfillmentType,
		vendorID:            p.VendorID,
		routedAt:            p.RoutedAt,
		trackingNumber:      p.TrackingNumber,
		courierCompany:      p.CourierCompany,
		stockRestored:       p.StockRestored,
		stockRestoredAt:     p.StockRestoredAt,
		createdAt:           p.CreatedAt,
		updatedAt:           p.UpdatedAt,
		isConstructed:       true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ExternalOrderNumber returns the batch-unique external order number.
func (o *Order) ExternalOrderNumber() string {
	return o.externalOrderNumber
}

// ProductCode returns the ordered product's code.
func (o *Order) ProductCode() string {
	return o.productCode
}

// Quantity returns the ordered quantity.
func (o *Order) Quantity() int {
	return o.quantity
}

// Details returns the orderer and recipient fields.
func (o *Order) Details() ShippingDetails {
	return o.details
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// FulfillmentType returns the assigned route, or FulfillmentUnassigned
// before the router has run.
func (o *Order) FulfillmentType() FulfillmentType {
	return o.fulfillmentType
}

// VendorID returns the assigned vendor's ID, or nil for self fulfillment.
func (o *Order) VendorID() *kernel.UUID {
	return o.vendorID
}

// RoutedAt returns when the route was assigned or last overridden, or nil
// before routing. The router's per-day vendor headroom is counted against
// this timestamp.
func (o *Order) RoutedAt() *time.Time {
	return o.routedAt
}

// TrackingNumber returns the registered tracking number, if any.
func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

// CourierCompany returns the registered courier company, if any.
func (o *Order) CourierCompany() string {
	return o.courierCompany
}

// StockRestored reports whether the stock reserved for this order has
// already been credited back.
func (o *Order) StockRestored() bool {
	return o.stockRestored
}

// StockRestoredAt returns when the reserved stock was credited back,
// or nil if it never was.
func (o *Order) StockRestoredAt() *time.Time {
	return o.stockRestoredAt
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// StartPreparing transitions the order Waiting→Preparing.
// No stock effect: material stock was already reserved at ingestion.
func (o *Order) StartPreparing() error {
	return o.transition(Preparing)
}

// ReturnToWaiting transitions the order Preparing→Waiting.
// This is a restoring transition: the caller must credit the reserved
// material stock back through the ledger and then call MarkStockRestored,
// all within the same transaction.
func (o *Order) ReturnToWaiting() error {
	return o.transition(Waiting)
}

// AssignRoute writes the fulfillment router's decision and transitions the
// order Preparing→ReadyToShip. A vendor route requires a vendor id; a self
// route must not carry one. Routing never mutates stock.
func (o *Order) AssignRoute(ft FulfillmentType, vendorID *kernel.UUID) error {
	if err := o.validateRoute(ft, vendorID); err != nil {
		return err
	}
	if err := o.transition(ReadyToShip); err != nil {
		return err
	}

	o.fulfillmentType = ft
	o.vendorID = vendorID
	now := time.Now().UTC()
	o.routedAt = &now
	return nil
}

// OverrideRoute rewrites an already-assigned route. This is the only path
// that changes routing after AssignRoute; it is reserved for explicit admin
// action and allowed only while the order is ReadyToShip.
func (o *Order) OverrideRoute(ft FulfillmentType, vendorID *kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := o.validateRoute(ft, vendorID); err != nil {
		return err
	}
	if o.status != ReadyToShip {
		return errs.NewInvalidTransitionError(o.status.String(), "route override")
	}

	o.fulfillmentType = ft
	o.vendorID = vendorID
	now := time.Now().UTC()
	o.routedAt = &now
	o.touch()
	return nil
}

// RegisterTracking records the tracking number and courier company.
// Allowed while the order is Preparing or ReadyToShip; both values are
// required before the order can ship.
func (o *Order) RegisterTracking(trackingNumber, courierCompany string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	if courierCompany == "" {
		return errs.NewValueIsRequiredError("courierCompany")
	}
	if o.status != Preparing && o.status != ReadyToShip {
		return errs.NewInvalidTransitionError(o.status.String(), "tracking registration")
	}

	o.trackingNumber = trackingNumber
	o.courierCompany = courierCompany
	o.touch()
	return nil
}

// Ship transitions the order ReadyToShip→Shipping.
// Precondition: tracking number and courier company are registered.
func (o *Order) Ship() error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.trackingNumber == "" || o.courierCompany == "" {
		return errs.NewValueIsRequiredErrorWithCause("trackingNumber",
			errs.NewInvalidTransitionError(o.status.String(), Shipping.String()))
	}
	return o.transition(Shipping)
}

// Deliver transitions the order Shipping→Delivered, the happy-path terminal state.
func (o *Order) Deliver() error {
	return o.transition(Delivered)
}

// Cancel transitions the order into one of the cancellation states.
// Allowed from Waiting and Preparing. This is a restoring transition when
// the order's stock has not been restored yet.
func (o *Order) Cancel(target Status) error {
	if !target.IsCancelled() {
		return errs.NewValueIsInvalidError("cancel target: " + target.String())
	}
	return o.transition(target)
}

// NeedsStockRestore reports whether transitioning to target must credit the
// reserved material stock back. False once stockRestored is set: a second
// restore attempt is a no-op, never a double credit.
func (o *Order) NeedsStockRestore(target Status) bool {
	return o.status.IsRestoringTransition(target) && !o.stockRestored
}

// MarkStockRestored records that the reserved stock was credited back.
// Idempotent: calling it on an already-restored order changes nothing.
func (o *Order) MarkStockRestored(at time.Time) {
	if o.stockRestored {
		return
	}
	o.stockRestored = true
	t := at.UTC()
	o.stockRestoredAt = &t
	o.touch()
}

// transition moves the order to target through the status transition table.
// On rejection the order is left unchanged.
func (o *Order) transition(target Status) error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

func (o *Order) validateRoute(ft FulfillmentType, vendorID *kernel.UUID) error {
	if err := ft.Validate(); err != nil {
		return err
	}
	if ft == FulfillmentVendor {
		if vendorID == nil {
			return errs.NewValueIsRequiredError("vendorID")
		}
		if err := vendorID.Validate(); err != nil {
			return err
		}
	}
	if ft == FulfillmentSelf && vendorID != nil {
		return errs.NewValueIsInvalidError("vendorID must be empty for self fulfillment")
	}
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setExternalOrderNumber(n string) error {
	if n == "" {
		return errs.NewValueIsRequiredError("externalOrderNumber")
	}
	o.externalOrderNumber = n
	return nil
}

func (o *Order) setProductCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("productCode")
	}
	o.productCode = code
	return nil
}

func (o *Order) setQuantity(q int) error {
	if q <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	o.quantity = q
	return nil
}

func (o *Order) setDetails(d ShippingDetails) error {
	if d.RecipientName == "" {
		return errs.NewValueIsRequiredError("recipientName")
	}
	if d.RecipientAddress == "" {
		return errs.NewValueIsRequiredError("recipientAddress")
	}
	o.details = d
	return nil
}
