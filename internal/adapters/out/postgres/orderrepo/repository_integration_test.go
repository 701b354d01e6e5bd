package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite verifies order persistence against a
// real PostgreSQL instance.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(ext string) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), ext, "P1", 2, order.ShippingDetails{
		RecipientName:    "Jane Roe",
		RecipientAddress: "12 Harbor Lane, Springfield",
	})
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("EXT-1")

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ExternalOrderNumber(), loaded.ExternalOrderNumber())
	suite.Equal(testOrder.ProductCode(), loaded.ProductCode())
	suite.Equal(testOrder.Quantity(), loaded.Quantity())
	suite.Equal(order.Waiting, loaded.Status())
	suite.Equal(order.FulfillmentUnassigned, loaded.FulfillmentType())
	suite.False(loaded.StockRestored())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsTransition() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("EXT-2")
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.StartPreparing())
	suite.Require().NoError(testOrder.RegisterTracking("1Z999", "cj"))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Preparing, loaded.Status())
	suite.Equal("1Z999", loaded.TrackingNumber())
	suite.Equal("cj", loaded.CourierCompany())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsVendorRoute() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("EXT-3")
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	vendorID := kernel.NewUUID()
	suite.Require().NoError(testOrder.StartPreparing())
	suite.Require().NoError(testOrder.AssignRoute(order.FulfillmentVendor, &vendorID))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.ReadyToShip, loaded.Status())
	suite.Equal(order.FulfillmentVendor, loaded.FulfillmentType())
	suite.Require().NotNil(loaded.VendorID())
	suite.True(loaded.VendorID().IsEqual(vendorID))
	suite.Require().NotNil(loaded.RoutedAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetActiveByExternalNumbers() {
	ctx := context.Background()

	active := suite.createTestOrder("EXT-A")
	suite.Require().NoError(suite.repository.Add(ctx, active))

	cancelled := suite.createTestOrder("EXT-B")
	suite.Require().NoError(cancelled.Cancel(order.AdminCancelled))
	suite.Require().NoError(suite.repository.Add(ctx, cancelled))

	found, err := suite.repository.GetActiveByExternalNumbers(ctx, []string{"EXT-A", "EXT-B", "EXT-C"})
	suite.Require().NoError(err)
	suite.True(found["EXT-A"])
	suite.False(found["EXT-B"], "cancelled orders do not block their number")
	suite.False(found["EXT-C"])
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCountRoutedToVendor() {
	ctx := context.Background()
	vendorID := kernel.NewUUID()

	for _, ext := range []string{"EXT-10", "EXT-11"} {
		o := suite.createTestOrder(ext)
		suite.Require().NoError(o.StartPreparing())
		suite.Require().NoError(o.AssignRoute(order.FulfillmentVendor, &vendorID))
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	selfRouted := suite.createTestOrder("EXT-12")
	suite.Require().NoError(selfRouted.StartPreparing())
	suite.Require().NoError(selfRouted.AssignRoute(order.FulfillmentSelf, nil))
	suite.Require().NoError(suite.repository.Add(ctx, selfRouted))

	total, err := suite.repository.CountRoutedToVendor(ctx, vendorID, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Equal(4, total, "two orders of quantity 2 each")
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
