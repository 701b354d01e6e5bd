// Package allocationrepo provides data transfer objects and mapping
// functions for vendor allocation persistence.
package allocationrepo

import (
	"time"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
)

// AllocationDTO represents the database structure for persisting
// allocation negotiations. The (product, vendor, date) triple identifies
// one negotiation thread.
type AllocationDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Date              time.Time `gorm:"index"`
	ProductCode       string    `gorm:"index"`
	VendorID          uuid.UUID `gorm:"type:uuid;index"`
	RequestedQuantity int
	ConfirmedQuantity int
	Memo              string
	Status            string `gorm:"index"`
	NotifiedAt        *time.Time
	RespondedAt       *time.Time
	ConfirmedAt       *time.Time
	CreatedAt         time.Time
}

// TableName specifies the database table name for allocations.
func (AllocationDTO) TableName() string {
	return "allocations"
}

func fromDomain(a *allocation.Allocation) AllocationDTO {
	return AllocationDTO{
		ID:                a.ID().Bytes(),
		Date:              a.Date(),
		ProductCode:       a.ProductCode(),
		VendorID:          a.VendorID().Bytes(),
		RequestedQuantity: a.RequestedQuantity(),
		ConfirmedQuantity: a.ConfirmedQuantity(),
		Memo:              a.Memo(),
		Status:            a.Status().String(),
		NotifiedAt:        a.NotifiedAt(),
		RespondedAt:       a.RespondedAt(),
		ConfirmedAt:       a.ConfirmedAt(),
		CreatedAt:         a.CreatedAt(),
	}
}

func toDomain(dto AllocationDTO) (*allocation.Allocation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	status, err := allocation.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return allocation.RestoreAllocation(allocation.RestoreParams{
		ID:                id,
		Date:              dto.Date,
		ProductCode:       dto.ProductCode,
		VendorID:          vendorID,
		RequestedQuantity: dto.RequestedQuantity,
		ConfirmedQuantity: dto.ConfirmedQuantity,
		Memo:              dto.Memo,
		Status:            status,
		NotifiedAt:        dto.NotifiedAt,
		RespondedAt:       dto.RespondedAt,
		ConfirmedAt:       dto.ConfirmedAt,
		CreatedAt:         dto.CreatedAt,
	})
}
