package services

import (
	"inventory-sync-backend/db/models"
)

// ValidateBOMPayload checks a single BOM payload before it is written to the
// remote store. Returns an empty string when the payload is acceptable.
func ValidateBOMPayload(bom *models.BOMRecord) string {
	if bom.ItemID == 0 || bom.ComponentID == 0 {
		return "Item ID and Component ID are mandatory"
	}
	if bom.ItemID == bom.ComponentID {
		return "Item ID and Component ID must not be the same item"
	}
	if bom.Quantity < 1 || bom.Quantity > 100 {
		return "Quantity must be between 1 and 100"
	}
	return ""
}
