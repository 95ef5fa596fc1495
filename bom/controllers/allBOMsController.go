package controllers

import (
	"inventory-sync-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AllBOMsController lists the full BOM collection from the remote store.
func (bc *BOMController) AllBOMsController(c *fiber.Ctx) error {
	boms, err := bc.BOMRepo.GetBOMs(c.UserContext())
	if err != nil {
		config.Logger.Error("Failed to fetch BOM entries from remote store", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Failed to fetch BOM entries",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "BOM entries fetched successfully",
		"data":    boms,
	})
}
