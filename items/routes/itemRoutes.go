package routes

import (
	"inventory-sync-backend/items/controllers"
	"inventory-sync-backend/items/repositories"

	"github.com/gofiber/fiber/v2"
)

func ItemRouterInit(
	app *fiber.App,
	itemRepository repositories.ItemRepository,
) {
	itemController := &controllers.ItemController{
		ItemRepo: itemRepository,
	}

	itemRoutes := app.Group("/items")
	itemRoutes.Get("/", itemController.AllItemsController)
	itemRoutes.Post("/", itemController.CreateItemController)
	itemRoutes.Put("/:id", itemController.UpdateItemController)
	itemRoutes.Delete("/:id", itemController.DeleteItemController)
}
