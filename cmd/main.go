package main

import (
	"context"

	"inventory-sync-backend/config"
	"inventory-sync-backend/middleware"
	"inventory-sync-backend/utils"

	// Repositories
	bom_repositories "inventory-sync-backend/bom/repositories"
	imports_repositories "inventory-sync-backend/imports/repositories"
	items_repositories "inventory-sync-backend/items/repositories"

	// Services
	imports_services "inventory-sync-backend/imports/services"
	internal_services "inventory-sync-backend/internal/services"

	// Routes
	bom_routes "inventory-sync-backend/bom/routes"
	dashboard_routes "inventory-sync-backend/dashboard/routes"
	imports_routes "inventory-sync-backend/imports/routes"
	items_routes "inventory-sync-backend/items/routes"

	// Bleve
	bleveControllers "inventory-sync-backend/bleve/controllers"
	bleveRepositories "inventory-sync-backend/bleve/repositories"
	bleveRoutes "inventory-sync-backend/bleve/routes"
	bleveServices "inventory-sync-backend/bleve/services"

	// WebSocket
	ws "inventory-sync-backend/websocket"

	"github.com/gofiber/fiber/v2"
	fiberws "github.com/gofiber/websocket/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Initialize Zap logger
	config.InitLogger()

	// Load environment variables
	err := godotenv.Load(".env")
	if err != nil {
		config.Logger.Fatal("Error loading .env file", zap.Error(err))
	}

	app := fiber.New()

	// Apply CORS middleware from middleware package
	baseFrontendURL := config.GetEnvOrDefault("BASE_FRONTEND_URL", "http://localhost:5173")
	middleware.InitCors(app, baseFrontendURL)

	// Initialize database and configs
	db := config.ConfigureDatabase()
	port := config.GetEnvOrDefault("PORT", "8080")
	ctx := context.Background()

	redisClient := config.InitRedisServer(ctx)

	// Remote Items/BOM store
	remoteBaseURL := config.GetEnvOrDefault("REMOTE_API_BASE_URL", "https://api-assignment.inveesync.in")
	remoteClient, err := internal_services.NewRemoteStoreClient(remoteBaseURL, config.Logger)
	if err != nil {
		config.Logger.Fatal("Cannot create remote store client", zap.Error(err))
	}

	indexPath := config.GetEnvOrDefault("BLEVE_INDEX_PATH", "./bleve_data")

	// Initialize the mailer
	utils.InitializeMailer()
	if utils.GetMailer() == nil {
		config.Logger.Fatal("Mailer not initialized")
	}

	// ------ WebSocket hub for import progress streaming ------
	config.Logger.Info("Initializing WebSocket hub for import progress...")
	wsHub := ws.NewHub()
	go wsHub.Run()

	// Serve static files (generated error reports)
	app.Static("/public", "./public")

	// Repositories
	bleveIndexingService := bleveServices.NewIndexingService(config.Logger, indexPath)
	_, bleveInterfaceRepo := bleveRepositories.NewBleveRepository(bleveIndexingService)
	itemRepo := items_repositories.NewItemRepository(remoteClient)
	bomRepo := bom_repositories.NewBOMRepository(remoteClient)
	importLogRepo := imports_repositories.NewImportLogRepository(db)

	// Import pipeline
	requireItemExists := config.GetEnvOrDefault("BOM_REQUIRE_ITEM_EXISTS", "true") != "false"
	validationConfig := imports_services.ValidationConfig{RequireItemExists: requireItemExists}
	submitter := imports_services.NewSubmitter(itemRepo, bomRepo, config.Logger, wsHub)
	importService := imports_services.NewImportService(itemRepo, submitter, validationConfig, wsHub, config.Logger)

	// Routes
	items_routes.ItemRouterInit(app, itemRepo)
	bom_routes.BOMRouterInit(app, bomRepo)
	dashboard_routes.DashboardRouterInit(app, itemRepo, bomRepo, redisClient)
	imports_routes.ImportRouterInit(app, importService, importLogRepo, bleveInterfaceRepo, redisClient)

	// Bleve Routes
	bleveController := bleveControllers.NewSearchController(bleveInterfaceRepo)
	bleveRoutes.InitBleveRoutes(app, bleveController)

	// WebSocket route for import progress
	wsHandler := ws.NewWsHandler(wsHub)
	app.Use("/ws/imports", ws.UpgradeRequired)
	app.Get("/ws/imports", fiberws.New(wsHandler.HandleProgress))
	config.Logger.Info("WebSocket endpoint registered at /ws/imports")

	// Background cleanup of generated error reports
	go utils.RunScheduledCleanup(redisClient)

	// Start the application
	config.Logger.Info("Server starting", zap.String("port", port))
	config.Logger.Fatal("Server failed", zap.String("port", port), zap.Error(app.Listen(":"+port)))
}
