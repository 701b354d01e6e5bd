package cmd

import (
	"fulfillment/internal/adapters/out/catalogclient"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/vendornotify"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    ports.ProductCatalog
	notifier   ports.VendorNotifier
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    catalogclient.NewClient(configs.CatalogServiceURL),
		notifier:   vendornotify.NewClient(configs.VendorNotifyWebhook),
	}
}

func (c *CompositionRoot) CreateImportOrdersCommandHandler() commands.ImportOrdersCommandHandler {
	var f commands.OrderStockUoWFactory = FuncOrderStockUoWFactory(func() commands.OrderStockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewImportOrdersCommandHandler(f, c.catalog)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.catalog, services.NewFulfillmentRouter())
}

func (c *CompositionRoot) CreateRegisterTrackingCommandHandler() commands.RegisterTrackingCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterTrackingCommandHandler(f)
}

func (c *CompositionRoot) CreateOverrideRouteCommandHandler() commands.OverrideRouteCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOverrideRouteCommandHandler(f)
}

func (c *CompositionRoot) CreateAdjustStockCommandHandler() commands.AdjustStockCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdjustStockCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestAllocationCommandHandler() commands.RequestAllocationCommandHandler {
	return commands.NewRequestAllocationCommandHandler(c.allocationUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateRespondAllocationCommandHandler() commands.RespondAllocationCommandHandler {
	return commands.NewRespondAllocationCommandHandler(c.allocationUoWFactory())
}

func (c *CompositionRoot) CreateConfirmAllocationCommandHandler() commands.ConfirmAllocationCommandHandler {
	return commands.NewConfirmAllocationCommandHandler(c.allocationUoWFactory())
}

func (c *CompositionRoot) CreateRejectAllocationCommandHandler() commands.RejectAllocationCommandHandler {
	return commands.NewRejectAllocationCommandHandler(c.allocationUoWFactory())
}

func (c *CompositionRoot) CreateNotifyPendingAllocationsCommandHandler() commands.NotifyPendingAllocationsCommandHandler {
	return commands.NewNotifyPendingAllocationsCommandHandler(c.allocationUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateGetStockMovementsQueryHandler() queries.GetStockMovementsQueryHandler {
	return queries.NewGetStockMovementsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockBalanceQueryHandler() queries.GetStockBalanceQueryHandler {
	return queries.NewGetStockBalanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenAllocationsQueryHandler() queries.GetOpenAllocationsQueryHandler {
	return queries.NewGetOpenAllocationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) allocationUoWFactory() commands.AllocationUoWFactory {
	return FuncAllocationUoWFactory(func() commands.AllocationUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}

type FuncOrderStockUoWFactory func() commands.OrderStockUoW

func (f FuncOrderStockUoWFactory) Create() commands.OrderStockUoW {
	return f()
}

type FuncAllocationUoWFactory func() commands.AllocationUoW

func (f FuncAllocationUoWFactory) Create() commands.AllocationUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
