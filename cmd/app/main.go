package main

import (
	"context"
	"log"
	"os"

	"github.com/Bester1/hoenders-sub000/external/appsscript"

	"github.com/Bester1/hoenders-sub000/internal/db"
	"github.com/Bester1/hoenders-sub000/internal/localstore"
	"github.com/Bester1/hoenders-sub000/internal/repository"
	"github.com/Bester1/hoenders-sub000/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	store, err := localstore.Open(dataDir)
	if err != nil {
		log.Fatal(err)
	}

	// ======================
	// EXTERNALS
	// ======================
	var mailer services.EmailSender
	if os.Getenv("APPS_SCRIPT_URL") != "" {
		mailer, err = appsscript.NewMailer()
		if err != nil {
			log.Fatal(err)
		}
	} else {
		mailer = services.NewLogMailer(logger)
	}

	// ======================
	// REPOSITORIES
	// ======================
	cartRepo := repository.NewCartRepository(store)
	customerRepo := repository.NewCustomerRepository(store)
	orderLocalRepo := repository.NewOrderLocalRepository(store)
	orderRemoteRepo := repository.NewOrderRemoteRepository(pool)
	queueRepo := repository.NewEmailQueueRepository(store)
	adminRepo := repository.NewAdminRepository(pool)

	// ======================
	// SERVICES
	// ======================
	cartSvc := services.NewCartService(cartRepo, logger)
	customerSvc := services.NewCustomerService(customerRepo, logger)
	orderSvc := services.NewOrderService(orderLocalRepo, orderRemoteRepo, queueRepo, cartSvc, mailer, logger)
	importSvc := services.NewImportService(logger)
	authSvc := services.NewAuthService(adminRepo)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	api := e.Group("/farm-store")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAuthRoutes(api, authSvc)
	registerCatalogRoutes(api)
	registerCartRoutes(api, cartSvc)
	registerCustomerRoutes(api, customerSvc)
	registerOrderRoutes(api, orderSvc, orderLocalRepo, orderRemoteRepo)
	registerImportRoutes(api, importSvc, orderSvc)
	registerEmailQueueRoutes(api, queueRepo, orderSvc)

	// ======================
	// SERVER
	// ======================
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
