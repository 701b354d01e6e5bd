// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read the database directly and return flat response
// structs; they never load aggregates or mutate state.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetStockMovementsQueryIsNotConstructed = errors.New(
		"GetStockMovementsQuery must be created via NewGetStockMovementsQuery constructor",
	)
	ErrPageIsInvalid     = errors.New("page must be greater than 0")
	ErrPageSizeIsInvalid = errors.New("page size must be between 1 and 500")
)

const maxMovementsPageSize = 500

// StockMovementFilter narrows the ledger listing. Zero values mean "no
// filter"; Keyword matches item code and reason, case-insensitively.
type StockMovementFilter struct {
	ItemKind   string
	ActionKind string
	Source     string
	ActorID    string
	From       time.Time
	To         time.Time
	Keyword    string
}

// GetStockMovementsQuery retrieves a filtered, paginated page of the
// movement log, newest first.
type GetStockMovementsQuery struct {
	filter   StockMovementFilter
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetStockMovementsQuery creates a query for the movement log.
// Pages are 1-based; the page size is capped to keep responses bounded.
func NewGetStockMovementsQuery(filter StockMovementFilter, page, pageSize int) (GetStockMovementsQuery, error) {
	if page < 1 {
		return GetStockMovementsQuery{}, ErrPageIsInvalid
	}
	if pageSize < 1 || pageSize > maxMovementsPageSize {
		return GetStockMovementsQuery{}, ErrPageSizeIsInvalid
	}

	return GetStockMovementsQuery{
		filter:   filter,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStockMovementsQuery) Validate() error {
	return q.guard.Validate(ErrGetStockMovementsQueryIsNotConstructed)
}

// Filter returns the listing filter.
func (q GetStockMovementsQuery) Filter() StockMovementFilter {
	return q.filter
}

// Page returns the 1-based page number.
func (q GetStockMovementsQuery) Page() int {
	return q.page
}

// PageSize returns the number of rows per page.
func (q GetStockMovementsQuery) PageSize() int {
	return q.pageSize
}

// StockMovementResponse is one row of the movement log listing.
type StockMovementResponse struct {
	ID             kernel.UUID
	ItemKind       string
	ItemCode       string
	Delta          int
	BeforeBalance  int
	AfterBalance   int
	ActionKind     string
	Source         string
	RelatedOrderID *kernel.UUID
	ActorID        string
	Reason         string
	CreatedAt      time.Time
}

// GetStockMovementsQueryResponse is one page of the movement log plus the
// total row count matching the filter.
type GetStockMovementsQueryResponse struct {
	Movements []StockMovementResponse
	Total     int64
}
