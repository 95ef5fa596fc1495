package controllers

import (
	"context"
	"encoding/json"
	"time"

	bomRepositories "inventory-sync-backend/bom/repositories"
	"inventory-sync-backend/config"
	itemRepositories "inventory-sync-backend/items/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	summaryCacheKey = "dashboard:summary"
	summaryCacheTTL = 30 * time.Second
)

type DashboardController struct {
	ItemRepo    itemRepositories.ItemRepository
	BOMRepo     bomRepositories.BOMRepository
	RedisClient *redis.Client
}

type dashboardSummary struct {
	TotalItems int `json:"total_items"`
	TotalBOMs  int `json:"total_boms"`
}

// SummaryController returns item and BOM counts from the remote store. The
// counts are cached briefly in Redis so a dashboard refresh does not hammer
// the remote collection endpoints.
func (dc *DashboardController) SummaryController(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if cached := dc.readCache(ctx); cached != nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Dashboard summary fetched successfully",
			"data":    cached,
			"cached":  true,
		})
	}

	items, err := dc.ItemRepo.GetItems(ctx)
	if err != nil {
		config.Logger.Error("Failed to fetch items for dashboard", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Failed to fetch dashboard summary",
			"error":   err.Error(),
		})
	}

	boms, err := dc.BOMRepo.GetBOMs(ctx)
	if err != nil {
		config.Logger.Error("Failed to fetch BOM entries for dashboard", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": "Failed to fetch dashboard summary",
			"error":   err.Error(),
		})
	}

	summary := dashboardSummary{TotalItems: len(items), TotalBOMs: len(boms)}
	dc.writeCache(ctx, summary)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Dashboard summary fetched successfully",
		"data":    summary,
		"cached":  false,
	})
}

func (dc *DashboardController) readCache(ctx context.Context) *dashboardSummary {
	if dc.RedisClient == nil {
		return nil
	}
	raw, err := dc.RedisClient.Get(ctx, summaryCacheKey).Result()
	if err != nil {
		return nil
	}
	var summary dashboardSummary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return nil
	}
	return &summary
}

func (dc *DashboardController) writeCache(ctx context.Context, summary dashboardSummary) {
	if dc.RedisClient == nil {
		return
	}
	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := dc.RedisClient.Set(ctx, summaryCacheKey, raw, summaryCacheTTL).Err(); err != nil {
		config.Logger.Warn("Failed to cache dashboard summary", zap.Error(err))
	}
}
