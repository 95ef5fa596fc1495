package controllers

import (
	"inventory-sync-backend/config"
	"inventory-sync-backend/db/models"
	"inventory-sync-backend/items/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UpdateItemController validates an item payload and forwards it to the
// remote store's update endpoint.
func (ic *ItemController) UpdateItemController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid item id",
		})
	}

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

	updated, err := ic.ItemRepo.UpdateItem(c.UserContext(), id, item)
	if err != nil {
		config.Logger.Error("Failed to update item on remote store", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Failed to update item",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Item updated successfully",
		"data":    updated,
	})
}
