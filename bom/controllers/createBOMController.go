package controllers

import (
	"inventory-sync-backend/bom/services"
	"inventory-sync-backend/config"
	"inventory-sync-backend/db/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CreateBOMController validates a BOM payload and forwards it to the remote
// store's create endpoint.
func (bc *BOMController) CreateBOMController(c *fiber.Ctx) error {
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

	created, err := bc.BOMRepo.CreateBOM(c.UserContext(), bom)
	if err != nil {
		config.Logger.Error("Failed to create BOM entry on remote store", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Failed to create BOM entry",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "BOM entry created successfully",
		"data":    created,
	})
}
