package routes

import (
	bleveRepositories "inventory-sync-backend/bleve/repositories"
	"inventory-sync-backend/imports/controllers"
	"inventory-sync-backend/imports/repositories"
	"inventory-sync-backend/imports/services"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func ImportRouterInit(
	app *fiber.App,
	importService *services.ImportService,
	importLogRepository repositories.ImportLogRepository,
	bleveRepository bleveRepositories.BleveRepositoryInterface,
	redisClient *redis.Client,
) {
	uploadController := &controllers.UploadController{
		ImportService: importService,
		ImportLogRepo: importLogRepository,
		BleveRepo:     bleveRepository,
		RedisClient:   redisClient,
	}

	importRoutes := app.Group("/imports")
	importRoutes.Post("/", uploadController.BulkUploadController)
	importRoutes.Get("/runs", uploadController.ListRunsController)
	importRoutes.Get("/runs/:id/errors", uploadController.RunErrorsController)
}
