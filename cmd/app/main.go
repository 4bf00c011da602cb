package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"eshop/cmd"
	httpadapter "eshop/internal/adapters/in/http"
	"eshop/internal/adapters/out/memory"
	"eshop/internal/adapters/out/postgres/shipmentrepo"
	"eshop/internal/adapters/out/rabbitmq"
	"eshop/internal/core/domain/model/product"
	"eshop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	conn, ch, err := rabbitmq.SetupConn(configs.RabbitMQURL)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}
	defer conn.Close()
	defer ch.Close()

	notifier, err := rabbitmq.NewShipmentNotifier(ch, configs.ShippingQueueName)
	if err != nil {
		log.Fatalf("Error creating shipment notifier: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, notifier, seedCatalog())

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateFailOverdueShipmentsCommandHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
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
		RabbitMQURL:       goDotEnvVariable("RABBITMQ_URL"),
		ShippingQueueName: goDotEnvVariable("SHIPPING_QUEUE"),
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
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&shipmentrepo.ShipmentDTO{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

// seedCatalog registers the products available for ordering.
func seedCatalog() *memory.ProductCatalog {
	catalog := memory.NewProductCatalog()

	seed := []struct {
		name   string
		price  float64
		amount int
	}{
		{"Laptop", 1000.0, 5},
		{"Phone", 500.0, 10},
		{"Tablet", 300.0, 8},
		{"Headphones", 100.0, 25},
	}

	for _, p := range seed {
		prod, err := product.NewProduct(p.name, p.price, p.amount)
		if err != nil {
			log.Fatalf("Error creating product %s: %v", p.name, err)
		}
		if err = catalog.Register(prod); err != nil {
			log.Fatalf("Error registering product %s: %v", p.name, err)
		}
	}

	return catalog
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.ProductCatalog(),
		app.CreatePlaceOrderCommandHandler(),
		app.CreateCompleteShippingCommandHandler(),
		app.CreateFailShippingCommandHandler(),
		app.CreateGetShipmentStatusQueryHandler(),
		app.CreateGetShippingTypesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
