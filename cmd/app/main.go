package main

import (
	"fmt"
	stdhttp "net/http"
	"os"
	"time"

	"foodbridge/cmd"
	httpin "foodbridge/internal/adapters/in/http"
	"foodbridge/internal/adapters/out/governance"
	"foodbridge/internal/adapters/out/postgres/archiverepo"

	"log/slog"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := connectDB(configs)

	governanceTimeout, err := time.ParseDuration(configs.GovernanceTimeout)
	if err != nil {
		log.Fatalf("Invalid GOVERNANCE_TIMEOUT: %v", err)
	}
	governanceClient := governance.NewClient(configs.GovernanceURL, governanceTimeout)

	app := cmd.NewCompositionRoot(configs, governanceClient, gormDB)

	jobManager := app.CreateJobManager(logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, logger, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		GovernanceURL:     goDotEnvVariable("GOVERNANCE_URL"),
		GovernanceTimeout: goDotEnvVariable("GOVERNANCE_TIMEOUT"),
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

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&archiverepo.RecordDTO{}); err != nil {
		log.Fatalf("Failed to migrate archive schema: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, logger *slog.Logger, port string) {
	e := echo.New()
	e.Use(httpin.CorrelationMiddleware())
	e.Use(httpin.LoggingMiddleware(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(stdhttp.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateDonorProfileCommandHandler(),
		app.CreateCreateReceiverProfileCommandHandler(),
		app.CreateCreateDriverProfileCommandHandler(),
		app.CreateCreateSurplusPostingCommandHandler(),
		app.CreateCreateAssignmentCommandHandler(),
		app.CreateRecordDeliveryCommandHandler(),
		app.CreateCreateFoodRequestCommandHandler(),
		app.CreateSendMessageCommandHandler(),
		app.CreateDeleteMessageCommandHandler(),
		app.CreateListDonorsQueryHandler(),
		app.CreateListReceiversQueryHandler(),
		app.CreateListDriversQueryHandler(),
		app.CreateListPostingsQueryHandler(),
		app.CreateListAssignmentsQueryHandler(),
		app.CreateListDeliveriesQueryHandler(),
		app.CreateListFoodRequestsQueryHandler(),
		app.CreateGetMessagesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
