package services

import (
	"inventory-sync-backend/db/models"
)

// ValidateItemPayload checks a single item payload before it is written to
// the remote store. Returns an empty string when the payload is acceptable.
func ValidateItemPayload(item *models.ItemRecord) string {
	if item.InternalItemName == "" {
		return "Internal item name is required"
	}
	if item.TenantID <= 0 {
		return "Tenant ID must be a positive integer"
	}
	if !models.IsValidItemType(item.Type) {
		return "Invalid item type, must be sell, purchase or component"
	}
	if !models.IsValidUoM(item.UoM) {
		return "Invalid UoM, must be kgs or nos"
	}
	if item.MaxBuffer < 0 || item.MinBuffer < 0 {
		return "Buffer values must be non-negative"
	}
	if item.MaxBuffer < item.MinBuffer {
		return "max_buffer must be greater than or equal to min_buffer"
	}
	if item.Type == models.SellItemType && item.AdditionalAttributes.ScrapType == "" {
		return "scrap_type is required for sell items"
	}
	return ""
}
