package controllers

import (
	"inventory-sync-backend/bleve/repositories"
	"inventory-sync-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SearchController struct {
	BleveRepo repositories.BleveRepositoryInterface
}

func NewSearchController(bleveRepo repositories.BleveRepositoryInterface) *SearchController {
	return &SearchController{BleveRepo: bleveRepo}
}

// SearchImportErrorsController answers full-text queries over the persisted
// import error rows, e.g. ?q=scrap_type to find every row rejected for a
// missing scrap type.
func (sc *SearchController) SearchImportErrorsController(c *fiber.Ctx) error {
	queryString := c.Query("q")
	if queryString == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing 'q' query parameter",
		})
	}
	size := c.QueryInt("size", 25)

	result, err := sc.BleveRepo.SearchImportErrors(queryString, size)
	if err != nil {
		config.Logger.Error("Import error search failed", zap.String("query", queryString), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Search failed",
			"error":   err.Error(),
		})
	}

	hits := make([]fiber.Map, 0, len(result.Hits))
	for _, hit := range result.Hits {
		hits = append(hits, fiber.Map{
			"id":     hit.ID,
			"score":  hit.Score,
			"fields": hit.Fields,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Search completed",
		"total":   result.Total,
		"hits":    hits,
	})
}
