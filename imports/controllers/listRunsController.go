package controllers

import (
	"inventory-sync-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ListRunsController returns the most recent import runs from the audit log.
func (uc *UploadController) ListRunsController(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)

	runs, err := uc.ImportLogRepo.ListRuns(limit)
	if err != nil {
		config.Logger.Error("Failed to list import runs", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to list import runs",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Import runs fetched successfully",
		"data":    runs,
	})
}
