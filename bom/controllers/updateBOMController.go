package controllers

import (
	"inventory-sync-backend/bom/services"
	"inventory-sync-backend/config"
	"inventory-sync-backend/db/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UpdateBOMController validates a BOM payload and forwards it to the remote
// store's update endpoint.
func (bc *BOMController) UpdateBOMController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid BOM id",
		})
	}

	var bom models.BOMRecord
	if err := c.BodyParser(&bom); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if msg := services.ValidateBOMPayload(&bom); msg != "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": msg,
		})
	}

	updated, err := bc.BOMRepo.UpdateBOM(c.UserContext(), id, bom)
	if err != nil {
		config.Logger.Error("Failed to update BOM entry on remote store", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Failed to update BOM entry",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "BOM entry updated successfully",
		"data":    updated,
	})
}
