package allocationrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// GormAllocationRepository implements AllocationRepository using GORM.
type GormAllocationRepository struct {
	db *gorm.DB
}

// NewGormAllocationRepository creates a new GORM allocation repository.
func NewGormAllocationRepository(db *gorm.DB) *GormAllocationRepository {
	return &GormAllocationRepository{db: db}
}

// Add saves a new allocation to the database.
func (r *GormAllocationRepository) Add(ctx context.Context, aggregate *allocation.Allocation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing allocation to the database.
func (r *GormAllocationRepository) Update(ctx context.Context, aggregate *allocation.Allocation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AllocationDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves an allocation by ID.
func (r *GormAllocationRepository) Get(ctx context.Context, id kernel.UUID) (*allocation.Allocation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AllocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("allocation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInStatus retrieves all allocations currently in the given status.
func (r *GormAllocationRepository) GetAllInStatus(ctx context.Context, status allocation.Status) ([]*allocation.Allocation, error) {
	var dtos []AllocationDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", status.String()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetConfirmedForProductDate retrieves the confirmed allocations for a
// product and supply day.
func (r *GormAllocationRepository) GetConfirmedForProductDate(ctx context.Context, productCode string, date time.Time) ([]*allocation.Allocation, error) {
	var dtos []AllocationDTO
	err := r.db.WithContext(ctx).
		Where("product_code = ?", productCode).
		Where("date = ?", day(date)).
		Where("status = ?", allocation.StatusConfirmed.String()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetOpenForRequest retrieves the non-terminal allocation for the
// (product, vendor, date) request key.
func (r *GormAllocationRepository) GetOpenForRequest(ctx context.Context, productCode string, vendorID kernel.UUID, date time.Time) (*allocation.Allocation, error) {
	if err := vendorID.Validate(); err != nil {
		return nil, err
	}

	var dto AllocationDTO
	err := r.db.WithContext(ctx).
		Where("product_code = ?", productCode).
		Where("vendor_id = ?", vendorID.Bytes()).
		Where("date = ?", day(date)).
		Where("status IN ?", []string{
			allocation.StatusPending.String(),
			allocation.StatusNotified.String(),
			allocation.StatusResponded.String(),
		}).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			key := fmt.Sprintf("%s/%s/%s", productCode, vendorID.String(), day(date).Format(time.DateOnly))
			return nil, errs.NewObjectNotFoundError("allocation request", key)
		}
		return nil, err
	}

	return toDomain(dto)
}

// day normalizes a timestamp to its UTC day, matching the aggregate's date
// truncation.
func day(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}

func toDomainSlice(dtos []AllocationDTO) ([]*allocation.Allocation, error) {
	allocations := make([]*allocation.Allocation, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		allocations = append(allocations, a)
	}

	return allocations, nil
}
