package routes

import (
	bomRepositories "inventory-sync-backend/bom/repositories"
	"inventory-sync-backend/dashboard/controllers"
	itemRepositories "inventory-sync-backend/items/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func DashboardRouterInit(
	app *fiber.App,
	itemRepository itemRepositories.ItemRepository,
	bomRepository bomRepositories.BOMRepository,
	redisClient *redis.Client,
) {
	dashboardController := &controllers.DashboardController{
		ItemRepo:    itemRepository,
		BOMRepo:     bomRepository,
		RedisClient: redisClient,
	}

	dashboardRoutes := app.Group("/dashboard")
	dashboardRoutes.Get("/summary", dashboardController.SummaryController)
}
