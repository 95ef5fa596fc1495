package controllers

import (
	"inventory-sync-backend/config"
	"inventory-sync-backend/db/models"
	"inventory-sync-backend/items/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CreateItemController validates an item payload and forwards it to the
// remote store's create endpoint.
func (ic *ItemController) CreateItemController(c *fiber.Ctx) error {
	var item models.ItemRecord
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if msg := services.ValidateItemPayload(&item); msg != "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": msg,
		})
	}

	created, err := ic.ItemRepo.CreateItem(c.UserContext(), item)
	if err != nil {
		config.Logger.Error("Failed to create item on remote store", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Failed to create item",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Item created successfully",
		"data":    created,
	})
}
