package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"fulfillment/cmd"
	_ "fulfillment/docs"
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoswagger "github.com/swaggo/echo-swagger"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//	@title			Fulfillment Service API
//	@version		1.0
//	@description	Order ingestion, status transitions, inventory ledger, and vendor allocation negotiation.
//	@BasePath		/api/v1

func main() {
	configs := getConfigs()

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateNotifyPendingAllocationsCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		CatalogServiceURL:   goDotEnvVariable("CATALOG_SERVICE_URL"),
		VendorNotifyWebhook: goDotEnvVariable("VENDOR_NOTIFY_WEBHOOK"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	// TranslateError lets the repositories match on gorm.ErrDuplicatedKey
	return gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoswagger.WrapHandler)

	server := httpin.NewServer(
		app.CreateImportOrdersCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateRegisterTrackingCommandHandler(),
		app.CreateOverrideRouteCommandHandler(),
		app.CreateAdjustStockCommandHandler(),
		app.CreateRequestAllocationCommandHandler(),
		app.CreateRespondAllocationCommandHandler(),
		app.CreateConfirmAllocationCommandHandler(),
		app.CreateRejectAllocationCommandHandler(),
		app.CreateGetStockMovementsQueryHandler(),
		app.CreateGetStockBalanceQueryHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetOpenAllocationsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
