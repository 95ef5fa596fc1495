package routes

import (
	"inventory-sync-backend/bom/controllers"
	"inventory-sync-backend/bom/repositories"

	"github.com/gofiber/fiber/v2"
)

func BOMRouterInit(
	app *fiber.App,
	bomRepository repositories.BOMRepository,
) {
	bomController := &controllers.BOMController{
		BOMRepo: bomRepository,
	}

	bomRoutes := app.Group("/bom")
	bomRoutes.Get("/", bomController.AllBOMsController)
	bomRoutes.Post("/", bomController.CreateBOMController)
	bomRoutes.Put("/:id", bomController.UpdateBOMController)
	bomRoutes.Delete("/:id", bomController.DeleteBOMController)
}
