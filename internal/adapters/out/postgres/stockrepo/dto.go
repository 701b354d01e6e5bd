// Package stockrepo provides data transfer objects and mapping functions
// for the inventory ledger: item balances and the append-only movement log.
package stockrepo

import (
	"time"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/stock"
)

// BalanceDTO represents the database structure for one item balance. The
// item code is the natural primary key; the version column backs the
// optimistic concurrency check in SaveBalance.
type BalanceDTO struct {
	ItemCode  string `gorm:"primaryKey"`
	ItemKind  string `gorm:"index"`
	Quantity  int
	Version   int64
	UpdatedAt time.Time
}

// TableName specifies the database table name for item balances.
func (BalanceDTO) TableName() string {
	return "stock_balances"
}

// MovementDTO represents one immutable row of the movement log.
type MovementDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ItemKind       string
	ItemCode       string     `gorm:"index"`
	Delta          int
	BeforeBalance  int
	AfterBalance   int
	ActionKind     string
	Source         string
	RelatedOrderID *uuid.UUID `gorm:"type:uuid;index"`
	ActorID        string     `gorm:"index"`
	Reason         string
	CreatedAt      time.Time  `gorm:"index"`
}

// TableName specifies the database table name for stock movements.
func (MovementDTO) TableName() string {
	return "stock_movements"
}

func balanceFromDomain(b *stock.Balance) BalanceDTO {
	return BalanceDTO{
		ItemCode:  b.ItemCode(),
		ItemKind:  b.ItemKind().String(),
		Quantity:  b.Quantity(),
		Version:   b.Version(),
		UpdatedAt: b.UpdatedAt(),
	}
}

func balanceToDomain(dto BalanceDTO) (*stock.Balance, error) {
	kind, err := stock.ItemKindFromString(dto.ItemKind)
	if err != nil {
		return nil, err
	}

	return stock.RestoreBalance(kind, dto.ItemCode, dto.Quantity, dto.Version, dto.UpdatedAt)
}

func movementFromDomain(m stock.Movement) MovementDTO {
	var relatedOrderID *uuid.UUID
	if m.RelatedOrderID != nil {
		raw := m.RelatedOrderID.Bytes()
		relatedOrderID = &raw
	}

	return MovementDTO{
		ID:             m.ID.Bytes(),
		ItemKind:       m.ItemKind.String(),
		ItemCode:       m.ItemCode,
		Delta:          m.Delta,
		BeforeBalance:  m.BeforeBalance,
		AfterBalance:   m.AfterBalance,
		ActionKind:     m.ActionKind.String(),
		Source:         m.Source.String(),
		RelatedOrderID: relatedOrderID,
		ActorID:        m.ActorID,
		Reason:         m.Reason,
		CreatedAt:      m.CreatedAt,
	}
}

