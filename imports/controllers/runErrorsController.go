package controllers

import (
	"inventory-sync-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RunErrorsController returns the rejected rows recorded for one run.
func (uc *UploadController) RunErrorsController(c *fiber.Ctx) error {
	runID := c.Params("id")
	if runID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing run id"})
	}

	rows, err := uc.ImportLogRepo.GetRunErrors(runID)
	if err != nil {
		config.Logger.Error("Failed to fetch run errors", zap.String("run_id", runID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch run errors",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Run errors fetched successfully",
		"data":    rows,
	})
}
