package controllers

import (
	"inventory-sync-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AllItemsController lists the full item collection from the remote store.
func (ic *ItemController) AllItemsController(c *fiber.Ctx) error {
	items, err := ic.ItemRepo.GetItems(c.UserContext())
	if err != nil {
		config.Logger.Error("Failed to fetch items from remote store", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Failed to fetch items",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Items fetched successfully",
		"data":    items,
	})
}
