package commands_test

import (
	"context"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetActiveByExternalNumbers(ctx context.Context, numbers []string) (map[string]bool, error) {
	args := m.Called(ctx, numbers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) CountRoutedToVendor(ctx context.Context, vendorID kernel.UUID, date time.Time) (int, error) {
	args := m.Called(ctx, vendorID, date)
	return args.Int(0), args.Error(1)
}

type MockStockRepository struct{ mock.Mock }

func (m *MockStockRepository) GetBalanceForUpdate(ctx context.Context, itemCode string) (*stock.Balance, error) {
	args := m.Called(ctx, itemCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Balance), args.Error(1)
}

func (m *MockStockRepository) GetBalance(ctx context.Context, itemCode string) (*stock.Balance, error) {
	args := m.Called(ctx, itemCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Balance), args.Error(1)
}

func (m *MockStockRepository) AddBalance(ctx context.Context, balance *stock.Balance) error {
	args := m.Called(ctx, balance)
	return args.Error(0)
}

func (m *MockStockRepository) SaveBalance(ctx context.Context, balance *stock.Balance) error {
	args := m.Called(ctx, balance)
	return args.Error(0)
}

func (m *MockStockRepository) AppendMovement(ctx context.Context, movement stock.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

type MockAllocationRepository struct{ mock.Mock }

func (m *MockAllocationRepository) Add(ctx context.Context, a *allocation.Allocation) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAllocationRepository) Update(ctx context.Context, a *allocation.Allocation) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAllocationRepository) Get(ctx context.Context, id kernel.UUID) (*allocation.Allocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*allocation.Allocation), args.Error(1)
}

func (m *MockAllocationRepository) GetAllInStatus(ctx context.Context, status allocation.Status) ([]*allocation.Allocation, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*allocation.Allocation), args.Error(1)
}

func (m *MockAllocationRepository) GetConfirmedForProductDate(ctx context.Context, productCode string, date time.Time) ([]*allocation.Allocation, error) {
	args := m.Called(ctx, productCode, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*allocation.Allocation), args.Error(1)
}

func (m *MockAllocationRepository) GetOpenForRequest(ctx context.Context, productCode string, vendorID kernel.UUID, date time.Time) (*allocation.Allocation, error) {
	args := m.Called(ctx, productCode, vendorID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*allocation.Allocation), args.Error(1)
}

// MockUoW implements every unit of work shape the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) StockRepository() ports.StockRepository {
	args := m.Called()
	return args.Get(0).(ports.StockRepository)
}

func (m *MockUoW) AllocationRepository() ports.AllocationRepository {
	args := m.Called()
	return args.Get(0).(ports.AllocationRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockStockUoWFactory struct{ mock.Mock }

func (m *MockStockUoWFactory) Create() commands.StockUoW {
	args := m.Called()
	return args.Get(0).(commands.StockUoW)
}

type MockOrderStockUoWFactory struct{ mock.Mock }

func (m *MockOrderStockUoWFactory) Create() commands.OrderStockUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderStockUoW)
}

type MockAllocationUoWFactory struct{ mock.Mock }

func (m *MockAllocationUoWFactory) Create() commands.AllocationUoW {
	args := m.Called()
	return args.Get(0).(commands.AllocationUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) ProductExists(ctx context.Context, productCode string) (bool, error) {
	args := m.Called(ctx, productCode)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductCatalog) MaterialsFor(ctx context.Context, productCode string) ([]ports.MaterialRequirement, error) {
	args := m.Called(ctx, productCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.MaterialRequirement), args.Error(1)
}

type MockVendorNotifier struct{ mock.Mock }

func (m *MockVendorNotifier) NotifyAllocationRequested(ctx context.Context, a *allocation.Allocation) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
