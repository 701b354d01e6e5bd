package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeNotifiedAllocation(t *testing.T) *allocation.Allocation {
	t.Helper()
	a, err := allocation.NewAllocation(kernel.NewUUID(), time.Now().UTC(), "P1", kernel.NewUUID(), 50)
	require.NoError(t, err)
	require.NoError(t, a.MarkNotified(time.Now().UTC()))
	return a
}

func expectAllocationMutation(ctx context.Context, uow *MockUoW, repo *MockAllocationRepository, a *allocation.Allocation) {
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AllocationRepository").Return(repo).Once(),
		repo.On("Get", ctx, a.ID()).Return(a, nil).Once(),
		repo.On("Update", ctx, a).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
}

func TestNewRespondAllocationCommand_NegativeQuantity(t *testing.T) {
	_, err := commands.NewRespondAllocationCommand(kernel.NewUUID(), -1, "", "vendor-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAvailableQuantityIsNegative)
}

func TestRespondAllocationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	a := makeNotifiedAllocation(t)
	cmd, err := commands.NewRespondAllocationCommand(a.ID(), 30, "can do 30 only", "vendor-1")
	require.NoError(t, err)

	repo := new(MockAllocationRepository)
	uow := new(MockUoW)
	expectAllocationMutation(ctx, uow, repo, a)

	factory := new(MockAllocationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRespondAllocationCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, allocation.StatusResponded, a.Status())
	assert.Equal(t, 30, a.ConfirmedQuantity())
	assert.Equal(t, "can do 30 only", a.Memo())
	repo.AssertExpectations(t)
}

func TestConfirmAllocationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	a := makeNotifiedAllocation(t)
	require.NoError(t, a.Respond(30, "", time.Now().UTC()))

	cmd, err := commands.NewConfirmAllocationCommand(a.ID(), "op-1")
	require.NoError(t, err)

	repo := new(MockAllocationRepository)
	uow := new(MockUoW)
	expectAllocationMutation(ctx, uow, repo, a)

	factory := new(MockAllocationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmAllocationCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, allocation.StatusConfirmed, a.Status())
	repo.AssertExpectations(t)
}

func TestConfirmAllocationCommandHandler_Handle_BeforeResponseFails(t *testing.T) {
	ctx := t.Context()
	a := makeNotifiedAllocation(t)

	cmd, err := commands.NewConfirmAllocationCommand(a.ID(), "op-1")
	require.NoError(t, err)

	repo := new(MockAllocationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AllocationRepository").Return(repo).Once(),
		repo.On("Get", ctx, a.ID()).Return(a, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAllocationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmAllocationCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, allocation.StatusNotified, a.Status())
}

func TestRejectAllocationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	a := makeNotifiedAllocation(t)
	require.NoError(t, a.Respond(0, "out of capacity", time.Now().UTC()))

	cmd, err := commands.NewRejectAllocationCommand(a.ID(), "op-1")
	require.NoError(t, err)

	repo := new(MockAllocationRepository)
	uow := new(MockUoW)
	expectAllocationMutation(ctx, uow, repo, a)

	factory := new(MockAllocationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectAllocationCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, allocation.StatusRejected, a.Status())
	repo.AssertExpectations(t)
}
