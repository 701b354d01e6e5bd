package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/allocationrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/stockrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueryHandlerIntegrationTestSuite exercises the read side against a real
// PostgreSQL instance, seeded through the write-side repositories.
type QueryHandlerIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
}

func (suite *QueryHandlerIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&stockrepo.BalanceDTO{},
		&stockrepo.MovementDTO{},
		&allocationrepo.AllocationDTO{},
	))
}

func (suite *QueryHandlerIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, stock_balances, stock_movements, allocations").Error)
}

func (suite *QueryHandlerIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlerIntegrationTestSuite) seedOrder(ext string, mutate func(*order.Order)) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), ext, "P1", 2, order.ShippingDetails{
		RecipientName:    "Jane Roe",
		RecipientAddress: "12 Harbor Lane, Springfield",
	})
	suite.Require().NoError(err)
	if mutate != nil {
		mutate(o)
	}
	suite.Require().NoError(
		orderrepo.NewGormOrderRepository(suite.db).Add(context.Background(), o))
	return o
}

func (suite *QueryHandlerIntegrationTestSuite) TestGetActiveOrders() {
	ctx := context.Background()

	suite.seedOrder("EXT-1", nil)
	suite.seedOrder("EXT-2", func(o *order.Order) {
		suite.Require().NoError(o.StartPreparing())
	})
	suite.seedOrder("EXT-3", func(o *order.Order) {
		suite.Require().NoError(o.Cancel(order.AdminCancelled))
	})

	handler := queries.NewGetActiveOrdersQueryHandler(suite.db)

	query, err := queries.NewGetActiveOrdersQuery(nil)
	suite.Require().NoError(err)
	all, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(all, 2, "cancelled orders are not active")

	status := order.Preparing
	query, err = queries.NewGetActiveOrdersQuery(&status)
	suite.Require().NoError(err)
	preparing, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(preparing, 1)
	suite.Equal("EXT-2", preparing[0].ExternalOrderNumber)
	suite.Equal(order.Preparing.String(), preparing[0].Status)
	suite.Equal("Jane Roe", preparing[0].RecipientName)
}

func (suite *QueryHandlerIntegrationTestSuite) TestGetStockBalance() {
	ctx := context.Background()
	repo := stockrepo.NewGormStockRepository(suite.db)

	balance, err := stock.NewBalance(stock.ItemKindMaterial, "APPLE-RAW", 100)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.AddBalance(ctx, balance))

	handler := queries.NewGetStockBalanceQueryHandler(suite.db)

	query, err := queries.NewGetStockBalanceQuery("APPLE-RAW")
	suite.Require().NoError(err)
	response, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("APPLE-RAW", response.ItemCode)
	suite.Equal(stock.ItemKindMaterial.String(), response.ItemKind)
	suite.Equal(100, response.Quantity)

	query, err = queries.NewGetStockBalanceQuery("NOPE")
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlerIntegrationTestSuite) TestGetStockMovements() {
	ctx := context.Background()
	repo := stockrepo.NewGormStockRepository(suite.db)

	balance, err := stock.NewBalance(stock.ItemKindMaterial, "APPLE-RAW", 100)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.AddBalance(ctx, balance))

	orderID := kernel.NewUUID()
	reserve, err := balance.Reserve(4, orderID, "importer")
	suite.Require().NoError(err)
	suite.Require().NoError(repo.SaveBalance(ctx, balance))
	suite.Require().NoError(repo.AppendMovement(ctx, reserve))

	adjust, err := balance.Adjust(10, "found a pallet of apples", "admin", false)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.SaveBalance(ctx, balance))
	suite.Require().NoError(repo.AppendMovement(ctx, adjust))

	handler := queries.NewGetStockMovementsQueryHandler(suite.db)

	query, err := queries.NewGetStockMovementsQuery(queries.StockMovementFilter{}, 1, 50)
	suite.Require().NoError(err)
	response, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(int64(2), response.Total)
	suite.Require().Len(response.Movements, 2)

	query, err = queries.NewGetStockMovementsQuery(
		queries.StockMovementFilter{ActionKind: stock.ActionOut.String()}, 1, 50)
	suite.Require().NoError(err)
	response, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(int64(1), response.Total)
	suite.Require().Len(response.Movements, 1)
	suite.Equal(-4, response.Movements[0].Delta)
	suite.Require().NotNil(response.Movements[0].RelatedOrderID)
	suite.True(response.Movements[0].RelatedOrderID.IsEqual(orderID))

	query, err = queries.NewGetStockMovementsQuery(
		queries.StockMovementFilter{Keyword: "PALLET"}, 1, 50)
	suite.Require().NoError(err)
	response, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(int64(1), response.Total, "keyword matches reason case-insensitively")
}

func (suite *QueryHandlerIntegrationTestSuite) TestGetOpenAllocations() {
	ctx := context.Background()
	repo := allocationrepo.NewGormAllocationRepository(suite.db)
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()

	vendorID := kernel.NewUUID()
	open, err := allocation.NewAllocation(kernel.NewUUID(), date, "P1", vendorID, 50)
	suite.Require().NoError(err)
	suite.Require().NoError(open.MarkNotified(now))
	suite.Require().NoError(repo.Add(ctx, open))

	confirmed, err := allocation.NewAllocation(kernel.NewUUID(), date, "P1", kernel.NewUUID(), 20)
	suite.Require().NoError(err)
	suite.Require().NoError(confirmed.MarkNotified(now))
	suite.Require().NoError(confirmed.Respond(20, "", now))
	suite.Require().NoError(confirmed.Confirm(now))
	suite.Require().NoError(repo.Add(ctx, confirmed))

	handler := queries.NewGetOpenAllocationsQueryHandler(suite.db)

	query, err := queries.NewGetOpenAllocationsQuery(nil)
	suite.Require().NoError(err)
	response, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(response, 1, "confirmed negotiations are closed")
	suite.True(response[0].ID.IsEqual(open.ID()))
	suite.Equal(allocation.StatusNotified.String(), response[0].Status)

	otherVendor := kernel.NewUUID()
	query, err = queries.NewGetOpenAllocationsQuery(&otherVendor)
	suite.Require().NoError(err)
	response, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Len(response, 0)
}

func TestQueryHandlerIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(QueryHandlerIntegrationTestSuite))
}
