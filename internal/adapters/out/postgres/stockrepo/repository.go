package stockrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/pkg/errs"
)

// GormStockRepository implements StockRepository using GORM. Balance reads
// meant for mutation take a FOR UPDATE row lock so concurrent
// check-then-deduct sequences on the same item serialize; the version
// column catches writers that bypassed the lock.
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GORM stock repository.
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// GetBalanceForUpdate loads a balance under an exclusive row lock held
// until the surrounding transaction ends.
func (r *GormStockRepository) GetBalanceForUpdate(ctx context.Context, itemCode string) (*stock.Balance, error) {
	var dto BalanceDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "item_code = ?", itemCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("itemCode", itemCode)
		}
		return nil, err
	}

	return balanceToDomain(dto)
}

// GetBalance loads a balance without locking.
func (r *GormStockRepository) GetBalance(ctx context.Context, itemCode string) (*stock.Balance, error) {
	var dto BalanceDTO
	if err := r.db.WithContext(ctx).First(&dto, "item_code = ?", itemCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("itemCode", itemCode)
		}
		return nil, err
	}

	return balanceToDomain(dto)
}

// AddBalance inserts the first balance row for an item.
func (r *GormStockRepository) AddBalance(ctx context.Context, balance *stock.Balance) error {
	if err := balance.Validate(); err != nil {
		return err
	}

	dto := balanceFromDomain(balance)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConcurrencyConflictError("stock balance "+balance.ItemCode(), err)
		}
		return err
	}

	return nil
}

// SaveBalance persists a mutated balance. The WHERE clause pins the
// version the aggregate was loaded at; zero affected rows means another
// writer got there first.
func (r *GormStockRepository) SaveBalance(ctx context.Context, balance *stock.Balance) error {
	if err := balance.Validate(); err != nil {
		return err
	}

	dto := balanceFromDomain(balance)
	result := r.db.WithContext(ctx).Model(&BalanceDTO{}).
		Where("item_code = ? AND version = ?", dto.ItemCode, dto.Version-1).
		Select("quantity", "version", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("stock balance "+balance.ItemCode(), nil)
	}

	return nil
}

// AppendMovement appends one row to the movement log.
func (r *GormStockRepository) AppendMovement(ctx context.Context, movement stock.Movement) error {
	dto := movementFromDomain(movement)
	return r.db.WithContext(ctx).Create(&dto).Error
}
