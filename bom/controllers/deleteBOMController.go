package controllers

import (
	"inventory-sync-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DeleteBOMController forwards a delete to the remote store.
func (bc *BOMController) DeleteBOMController(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid BOM id",
		})
	}

	if err := bc.BOMRepo.DeleteBOM(c.UserContext(), id); err != nil {
		config.Logger.Error("Failed to delete BOM entry on remote store", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Failed to delete BOM entry",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "BOM entry deleted successfully",
	})
}
