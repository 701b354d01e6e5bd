package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func preparingOrder(t *testing.T, quantity int) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "EXT-100", "P1", quantity, order.ShippingDetails{
		RecipientName:    "Jisu Park",
		RecipientAddress: "12 Apple Farm Road",
	})
	require.NoError(t, err)
	require.NoError(t, o.StartPreparing())
	return o
}

func TestFulfillmentRouter_Route(t *testing.T) {
	router := services.NewFulfillmentRouter()

	t.Run("routes to vendor with headroom", func(t *testing.T) {
		o := preparingOrder(t, 5)
		vendorID := kernel.NewUUID()

		err := router.Route(o, []services.VendorCapacity{
			{VendorID: vendorID, ConfirmedQuantity: 100, RoutedQuantity: 40},
		})
		require.NoError(t, err)

		assert.Equal(t, order.ReadyToShip, o.Status())
		assert.Equal(t, order.FulfillmentVendor, o.FulfillmentType())
		require.NotNil(t, o.VendorID())
		assert.True(t, o.VendorID().IsEqual(vendorID))
	})

	t.Run("falls back to self without headroom", func(t *testing.T) {
		o := preparingOrder(t, 5)

		err := router.Route(o, []services.VendorCapacity{
			{VendorID: kernel.NewUUID(), ConfirmedQuantity: 10, RoutedQuantity: 7},
		})
		require.NoError(t, err)

		assert.Equal(t, order.FulfillmentSelf, o.FulfillmentType())
		assert.Nil(t, o.VendorID())
	})

	t.Run("falls back to self without any capacity", func(t *testing.T) {
		o := preparingOrder(t, 5)

		require.NoError(t, router.Route(o, nil))
		assert.Equal(t, order.FulfillmentSelf, o.FulfillmentType())
	})

	t.Run("prefers the vendor with the most headroom", func(t *testing.T) {
		o := preparingOrder(t, 5)
		small := kernel.NewUUID()
		large := kernel.NewUUID()

		err := router.Route(o, []services.VendorCapacity{
			{VendorID: small, ConfirmedQuantity: 20, RoutedQuantity: 10},
			{VendorID: large, ConfirmedQuantity: 100, RoutedQuantity: 10},
		})
		require.NoError(t, err)

		require.NotNil(t, o.VendorID())
		assert.True(t, o.VendorID().IsEqual(large))
	})

	t.Run("headroom must cover the whole order quantity", func(t *testing.T) {
		o := preparingOrder(t, 8)

		err := router.Route(o, []services.VendorCapacity{
			{VendorID: kernel.NewUUID(), ConfirmedQuantity: 10, RoutedQuantity: 3},
		})
		require.NoError(t, err)

		assert.Equal(t, order.FulfillmentSelf, o.FulfillmentType(),
			"7 units of headroom cannot absorb an 8 unit order")
	})

	t.Run("fails when order is not in Preparing", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "EXT-101", "P1", 1, order.ShippingDetails{
			RecipientName:    "Jisu Park",
			RecipientAddress: "12 Apple Farm Road",
		})
		require.NoError(t, err)

		err = router.Route(o, nil)
		require.Error(t, err)
		assert.Equal(t, order.Waiting, o.Status())
	})
}
