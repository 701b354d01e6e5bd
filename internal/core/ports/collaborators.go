package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/allocation"
)

// MaterialRequirement is one line of a product's bill of materials: the
// material consumed and how many units one order of the product uses.
type MaterialRequirement struct {
	MaterialCode  string
	UnitsPerOrder int
}

// ProductCatalog is the consumed contract of the external catalog service.
// Only product-code validity and the product→material mapping are used here.
type ProductCatalog interface {
	// ProductExists reports whether the product code is known and sellable.
	ProductExists(ctx context.Context, productCode string) (bool, error)

	// MaterialsFor resolves the materials consumed per order of the product.
	MaterialsFor(ctx context.Context, productCode string) ([]MaterialRequirement, error)
}

// VendorNotifier is the consumed contract of the external notification
// dispatcher: it informs a vendor that a new allocation request awaits its
// response. Delivery mechanics are the collaborator's concern.
type VendorNotifier interface {
	NotifyAllocationRequested(ctx context.Context, a *allocation.Allocation) error
}
