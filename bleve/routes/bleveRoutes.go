package routes

import (
	"inventory-sync-backend/bleve/controllers"

	"github.com/gofiber/fiber/v2"
)

func InitBleveRoutes(app *fiber.App, searchController *controllers.SearchController) {
	searchRoutes := app.Group("/imports/errors")
	searchRoutes.Get("/search", searchController.SearchImportErrorsController)
}
