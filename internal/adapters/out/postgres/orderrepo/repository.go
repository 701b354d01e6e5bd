package orderrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
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

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByExternalNumbers returns which of the given external order
// numbers belong to non-cancelled orders.
func (r *GormOrderRepository) GetActiveByExternalNumbers(ctx context.Context, numbers []string) (map[string]bool, error) {
	active := make(map[string]bool, len(numbers))
	if len(numbers) == 0 {
		return active, nil
	}

	var found []string
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("external_order_number IN ?", numbers).
		Where("status NOT IN ?", []string{order.AdminCancelled.String(), order.MemberCancelled.String()}).
		Pluck("external_order_number", &found).Error
	if err != nil {
		return nil, err
	}

	for _, number := range found {
		active[number] = true
	}
	return active, nil
}

// GetAllInStatus retrieves all orders currently in the given status.
func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", status.String()).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// CountRoutedToVendor sums the quantity of orders routed to the vendor on
// the given day. Cancelled orders free their slot again.
func (r *GormOrderRepository) CountRoutedToVendor(ctx context.Context, vendorID kernel.UUID, date time.Time) (int, error) {
	if err := vendorID.Validate(); err != nil {
		return 0, err
	}

	day := date.UTC().Truncate(24 * time.Hour)
	var total int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("vendor_id = ?", vendorID.Bytes()).
		Where("fulfillment_type = ?", order.FulfillmentVendor.String()).
		Where("status NOT IN ?", []string{order.AdminCancelled.String(), order.MemberCancelled.String()}).
		Where("routed_at >= ? AND routed_at < ?", day, day.Add(24*time.Hour)).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return int(total), nil
}
