package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAdjustStockCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewAdjustStockCommand(stock.ItemKindMaterial, "APPLE-RAW", -5, "damaged in storage", false, "op-1")
	require.NoError(t, err)
	assert.Equal(t, stock.ItemKindMaterial, cmd.ItemKind())
	assert.Equal(t, "APPLE-RAW", cmd.ItemCode())
	assert.Equal(t, -5, cmd.Delta())
	assert.Equal(t, "damaged in storage", cmd.Reason())
	assert.False(t, cmd.AllowNegative())
}

func TestNewAdjustStockCommand_ZeroDelta(t *testing.T) {
	_, err := commands.NewAdjustStockCommand(stock.ItemKindMaterial, "APPLE-RAW", 0, "count", false, "op-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeltaIsZero)
}

func TestNewAdjustStockCommand_EmptyReason(t *testing.T) {
	_, err := commands.NewAdjustStockCommand(stock.ItemKindMaterial, "APPLE-RAW", 5, "", false, "op-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrReasonIsRequired)
}

func TestAdjustStockCommandHandler_Handle_ExistingBalance(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAdjustStockCommand(stock.ItemKindMaterial, "APPLE-RAW", 25, "goods receipt", false, "op-1")
	require.NoError(t, err)

	balance := appleBalance(t, 100)
	stockRepo := new(MockStockRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StockRepository").Return(stockRepo).Once(),
		stockRepo.On("GetBalanceForUpdate", ctx, "APPLE-RAW").Return(balance, nil).Once(),
		stockRepo.On("SaveBalance", ctx, balance).Return(nil).Once(),
		stockRepo.On("AppendMovement", ctx, mock.AnythingOfType("stock.Movement")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdjustStockCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, 125, balance.Quantity())
	stockRepo.AssertExpectations(t)
}

func TestAdjustStockCommandHandler_Handle_CreatesMissingBalance(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAdjustStockCommand(stock.ItemKindProduct, "P9", 40, "initial stocking", false, "op-1")
	require.NoError(t, err)

	stockRepo := new(MockStockRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StockRepository").Return(stockRepo).Once(),
		stockRepo.On("GetBalanceForUpdate", ctx, "P9").Return(nil, errs.ErrObjectNotFound).Once(),
		stockRepo.On("AddBalance", ctx, mock.AnythingOfType("*stock.Balance")).Return(nil).Once(),
		stockRepo.On("AppendMovement", ctx, mock.AnythingOfType("stock.Movement")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdjustStockCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))
	stockRepo.AssertExpectations(t)
}

func TestAdjustStockCommandHandler_Handle_NegativeWithoutOverride(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAdjustStockCommand(stock.ItemKindMaterial, "APPLE-RAW", -200, "shrinkage", false, "op-1")
	require.NoError(t, err)

	balance := appleBalance(t, 100)
	stockRepo := new(MockStockRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StockRepository").Return(stockRepo).Once(),
		stockRepo.On("GetBalanceForUpdate", ctx, "APPLE-RAW").Return(balance, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdjustStockCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInsufficientStock)
	assert.Equal(t, 100, balance.Quantity())
}
