package main

import (
	"fmt"
	"os"

	"orders/cmd"
	httpadapter "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	var gormDB *gorm.DB
	if configs.Storage != cmd.StorageMemory {
		gormDB = mustConnectDB(configs)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	if jm := app.JobManager(); jm != nil {
		if err := jm.StartAll(); err != nil {
			log.Fatalf("Failed to start jobs: %v", err)
		}
		defer jm.StopAll()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		Storage:               goDotEnvVariable("STORAGE"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:             goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderEventsTopic: goDotEnvVariable("KAFKA_ORDER_EVENTS_TOPIC"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAddItemToOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
