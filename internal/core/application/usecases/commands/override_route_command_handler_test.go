package commands_test

import (
	"context"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeRoutedOrder(t *testing.T, vendorID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "EXT-77", "P1", 2, order.ShippingDetails{
		RecipientName:    "Jane Roe",
		RecipientAddress: "12 Harbor Lane, Springfield",
	})
	require.NoError(t, err)
	require.NoError(t, o.StartPreparing())
	require.NoError(t, o.AssignRoute(order.FulfillmentVendor, &vendorID))
	return o
}

func expectOrderMutation(ctx context.Context, uow *MockUoW, repo *MockOrderRepository, o *order.Order) {
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		repo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
}

func TestNewOverrideRouteCommand_VendorRouteWithoutVendor(t *testing.T) {
	_, err := commands.NewOverrideRouteCommand(kernel.NewUUID(), order.FulfillmentVendor, nil, "admin-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestOverrideRouteCommandHandler_Handle_SwitchToSelf(t *testing.T) {
	ctx := t.Context()
	o := makeRoutedOrder(t, kernel.NewUUID())

	cmd, err := commands.NewOverrideRouteCommand(o.ID(), order.FulfillmentSelf, nil, "admin-1")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	expectOrderMutation(ctx, uow, repo, o)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewOverrideRouteCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, order.FulfillmentSelf, o.FulfillmentType())
	assert.Nil(t, o.VendorID())
	repo.AssertExpectations(t)
}

func TestOverrideRouteCommandHandler_Handle_SwitchVendor(t *testing.T) {
	ctx := t.Context()
	o := makeRoutedOrder(t, kernel.NewUUID())
	newVendor := kernel.NewUUID()

	cmd, err := commands.NewOverrideRouteCommand(o.ID(), order.FulfillmentVendor, &newVendor, "admin-1")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	expectOrderMutation(ctx, uow, repo, o)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewOverrideRouteCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	require.NotNil(t, o.VendorID())
	assert.True(t, o.VendorID().IsEqual(newVendor))
	repo.AssertExpectations(t)
}

func TestOverrideRouteCommandHandler_Handle_ShippedOrderIsRejected(t *testing.T) {
	ctx := t.Context()
	o := makeRoutedOrder(t, kernel.NewUUID())
	require.NoError(t, o.RegisterTracking("1Z999", "cj"))
	require.NoError(t, o.Ship())

	cmd, err := commands.NewOverrideRouteCommand(o.ID(), order.FulfillmentSelf, nil, "admin-1")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewOverrideRouteCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.FulfillmentVendor, o.FulfillmentType())
	repo.AssertExpectations(t)
}
