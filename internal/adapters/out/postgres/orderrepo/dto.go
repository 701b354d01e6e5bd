// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Status and fulfillment type are stored as their string forms
// so the rows read naturally in ad-hoc queries.
type OrderDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ExternalOrderNumber string     `gorm:"index"`
	ProductCode         string     `gorm:"index"`
	Quantity            int
	Details             DetailsDTO `gorm:"embedded"`
	Status              string     `gorm:"index"`
	FulfillmentType     string
	VendorID            *uuid.UUID `gorm:"type:uuid;index"`
	RoutedAt            *time.Time
	TrackingNumber      string
	CourierCompany      string
	StockRestored       bool
	StockRestoredAt     *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// DetailsDTO represents the embedded orderer and recipient columns within
// the order table.
type DetailsDTO struct {
	OrdererName      string
	OrdererPhone     string
	RecipientName    string
	RecipientPhone   string
	RecipientAddress string
	PostalCode       string
	DeliveryMessage  string
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	var vendorID *uuid.UUID
	if id := o.VendorID(); id != nil {
		raw := id.Bytes()
		vendorID = &raw
	}

	details := o.Details()
	return OrderDTO{
		ID:                  o.ID().Bytes(),
		ExternalOrderNumber: o.ExternalOrderNumber(),
		ProductCode:         o.ProductCode(),
		Quantity:            o.Quantity(),
		Details: DetailsDTO{
			OrdererName:      details.OrdererName,
			OrdererPhone:     details.OrdererPhone,
			RecipientName:    details.RecipientName,
			RecipientPhone:   details.RecipientPhone,
			RecipientAddress: details.RecipientAddress,
			PostalCode:       details.PostalCode,
			DeliveryMessage:  details.DeliveryMessage,
		},
		Status:          o.Status().String(),
		FulfillmentType: o.FulfillmentType().String(),
		VendorID:        vendorID,
		RoutedAt:        o.RoutedAt(),
		TrackingNumber:  o.TrackingNumber(),
		CourierCompany:  o.CourierCompany(),
		StockRestored:   o.StockRestored(),
		StockRestoredAt: o.StockRestoredAt(),
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
	}
}

// toDomain converts a database row back to an order aggregate via
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	fulfillmentType, err := order.RestoreFulfillmentType(dto.FulfillmentType)
	if err != nil {
		return nil, err
	}

	var vendorID *kernel.UUID
	if dto.VendorID != nil {
		vID, vendorErr := kernel.UUIDFromBytes((*dto.VendorID)[:])
		if vendorErr != nil {
			return nil, vendorErr
		}
		vendorID = &vID
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:                  id,
		ExternalOrderNumber: dto.ExternalOrderNumber,
		ProductCode:         dto.ProductCode,
		Quantity:            dto.Quantity,
		Details: order.ShippingDetails{
			OrdererName:      dto.Details.OrdererName,
			OrdererPhone:     dto.Details.OrdererPhone,
			RecipientName:    dto.Details.RecipientName,
			RecipientPhone:   dto.Details.RecipientPhone,
			RecipientAddress: dto.Details.RecipientAddress,
			PostalCode:       dto.Details.PostalCode,
			DeliveryMessage:  dto.Details.DeliveryMessage,
		},
		Status:          status,
		FulfillmentType: fulfillmentType,
		VendorID:        vendorID,
		RoutedAt:        dto.RoutedAt,
		TrackingNumber:  dto.TrackingNumber,
		CourierCompany:  dto.CourierCompany,
		StockRestored:   dto.StockRestored,
		StockRestoredAt: dto.StockRestoredAt,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	})
}
