package order

import (
	"fulfillment/internal/pkg/errs"
)

// FulfillmentType determines whether an order ships through the platform's
// own operations or through an external vendor partner. It is written once
// by the fulfillment router at Preparing→ReadyToShip and only changed by an
// explicit admin override.
type FulfillmentType int

const (
	// FulfillmentUnassigned means the router has not decided yet.
	FulfillmentUnassigned FulfillmentType = iota

	// FulfillmentSelf routes the order through the platform's own operations.
	FulfillmentSelf

	// FulfillmentVendor routes the order through an external vendor partner.
	FulfillmentVendor
)

// getFulfillmentTypeStrings returns a map of FulfillmentType values to their
// string representations.
func getFulfillmentTypeStrings() map[FulfillmentType]string {
	return map[FulfillmentType]string{
		FulfillmentUnassigned: "Unassigned",
		FulfillmentSelf:       "Self",
		FulfillmentVendor:     "Vendor",
	}
}

// FulfillmentTypeFromString parses a fulfillment type name.
// "Unassigned" is not accepted from external input.
func FulfillmentTypeFromString(s string) (FulfillmentType, error) {
	for ft, name := range getFulfillmentTypeStrings() {
		if name == s && ft != FulfillmentUnassigned {
			return ft, nil
		}
	}
	return FulfillmentUnassigned, errs.NewValueIsInvalidError("fulfillmentType: " + s)
}

// RestoreFulfillmentType parses a fulfillment type name from storage.
// Unlike FulfillmentTypeFromString it accepts "Unassigned", the state
// every order persists until the router runs.
func RestoreFulfillmentType(s string) (FulfillmentType, error) {
	for ft, name := range getFulfillmentTypeStrings() {
		if name == s {
			return ft, nil
		}
	}
	return FulfillmentUnassigned, errs.NewValueIsInvalidError("fulfillmentType: " + s)
}

// String returns the human-readable name of the fulfillment type.
func (f FulfillmentType) String() string {
	if str, ok := getFulfillmentTypeStrings()[f]; ok {
		return str
	}
	return "Unassigned"
}

// Validate checks that the fulfillment type is an assigned route.
func (f FulfillmentType) Validate() error {
	if f != FulfillmentSelf && f != FulfillmentVendor {
		return errs.NewValueIsInvalidError("fulfillmentType")
	}
	return nil
}
