package queries_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetStockMovementsQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		filter := queries.StockMovementFilter{
			ItemKind: "material",
			Keyword:  "apple",
			From:     time.Now().UTC().Add(-24 * time.Hour),
		}

		query, err := queries.NewGetStockMovementsQuery(filter, 2, 50)

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.Equal(t, filter, query.Filter())
		assert.Equal(t, 2, query.Page())
		assert.Equal(t, 50, query.PageSize())
	})

	t.Run("page below one", func(t *testing.T) {
		_, err := queries.NewGetStockMovementsQuery(queries.StockMovementFilter{}, 0, 50)
		assert.ErrorIs(t, err, queries.ErrPageIsInvalid)
	})

	t.Run("page size out of range", func(t *testing.T) {
		_, err := queries.NewGetStockMovementsQuery(queries.StockMovementFilter{}, 1, 0)
		assert.ErrorIs(t, err, queries.ErrPageSizeIsInvalid)

		_, err = queries.NewGetStockMovementsQuery(queries.StockMovementFilter{}, 1, 501)
		assert.ErrorIs(t, err, queries.ErrPageSizeIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.GetStockMovementsQuery
		assert.ErrorIs(t, query.Validate(), queries.ErrGetStockMovementsQueryIsNotConstructed)
	})
}

func TestNewGetStockBalanceQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		query, err := queries.NewGetStockBalanceQuery("APPLE-RAW")

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.Equal(t, "APPLE-RAW", query.ItemCode())
	})

	t.Run("empty item code", func(t *testing.T) {
		_, err := queries.NewGetStockBalanceQuery("")
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.GetStockBalanceQuery
		assert.ErrorIs(t, query.Validate(), queries.ErrGetStockBalanceQueryIsNotConstructed)
	})
}

func TestNewGetActiveOrdersQuery(t *testing.T) {
	t.Run("without status filter", func(t *testing.T) {
		query, err := queries.NewGetActiveOrdersQuery(nil)

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.Nil(t, query.Status())
	})

	t.Run("with status filter", func(t *testing.T) {
		status := order.Preparing
		query, err := queries.NewGetActiveOrdersQuery(&status)

		require.NoError(t, err)
		require.NotNil(t, query.Status())
		assert.Equal(t, order.Preparing, *query.Status())
	})

	t.Run("invalid status", func(t *testing.T) {
		status := order.Unknown
		_, err := queries.NewGetActiveOrdersQuery(&status)
		assert.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.GetActiveOrdersQuery
		assert.ErrorIs(t, query.Validate(), queries.ErrGetActiveOrdersQueryIsNotConstructed)
	})
}

func TestNewGetOpenAllocationsQuery(t *testing.T) {
	t.Run("without vendor filter", func(t *testing.T) {
		query, err := queries.NewGetOpenAllocationsQuery(nil)

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.Nil(t, query.VendorID())
	})

	t.Run("with vendor filter", func(t *testing.T) {
		vendorID := kernel.NewUUID()
		query, err := queries.NewGetOpenAllocationsQuery(&vendorID)

		require.NoError(t, err)
		require.NotNil(t, query.VendorID())
		assert.True(t, query.VendorID().IsEqual(vendorID))
	})

	t.Run("unconstructed vendor id", func(t *testing.T) {
		var vendorID kernel.UUID
		_, err := queries.NewGetOpenAllocationsQuery(&vendorID)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.GetOpenAllocationsQuery
		assert.ErrorIs(t, query.Validate(), queries.ErrGetOpenAllocationsQueryIsNotConstructed)
	})
}
