package services

import (
	"fmt"

	"inventory-sync-backend/db/models"
)

// ValidateBOMRows applies the BOM rule set to every row, checking each row
// against the whole batch (pair uniqueness) and against the reference item
// collection fetched from the remote store. All rules are evaluated per row;
// rows with no violations come back in original order.
//
// The pair-uniqueness check is symmetric: every row sharing a colliding
// (item_id, component_id) pair is flagged, including the first occurrence.
func ValidateBOMRows(rows []BOMImportRow, referenceItems []models.ItemRecord, cfg ValidationConfig) ([]BOMImportRow, []RowError) {
	itemsByID := make(map[int]models.ItemRecord, len(referenceItems))
	for _, item := range referenceItems {
		itemsByID[item.ID] = item
	}

	pairCounts := make(map[string]int, len(rows))
	for _, row := range rows {
		pairCounts[pairKey(row)]++
	}

	validRows := make([]BOMImportRow, 0, len(rows))
	var errors []RowError

	for _, row := range rows {
		var rowErrors []string

		item, exists := itemsByID[row.ItemID.Int()]
		if exists && item.Type == models.SellItemType && row.ComponentID.Set {
			rowErrors = append(rowErrors, "Sell item cannot be a component in BOM")
		}
		if exists && item.Type == models.PurchaseItemType {
			rowErrors = append(rowErrors, "Purchase item cannot be item_id in BOM")
		}
		if pairCounts[pairKey(row)] > 1 {
			rowErrors = append(rowErrors, "Item ID + Component ID should be unique")
		}
		if !row.Quantity.Set || !row.Quantity.Valid || row.Quantity.Value < 1 || row.Quantity.Value > 100 {
			rowErrors = append(rowErrors, "Quantity should be between 1 to 100")
		}
		if cfg.RequireItemExists && !exists {
			rowErrors = append(rowErrors, "Item ID does not exist in the Item Master")
		}

		if len(rowErrors) > 0 {
			errors = append(errors, RowError{Row: row.SourceRow, Errors: rowErrors})
		} else {
			validRows = append(validRows, row)
		}
	}

	return validRows, errors
}

func pairKey(row BOMImportRow) string {
	return fmt.Sprintf("%s|%s", row.ItemID.Raw, row.ComponentID.Raw)
}
