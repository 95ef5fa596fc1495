package services

import (
	"inventory-sync-backend/db/models"
)

// ValidateItemRows applies the item rule set to every row. All rules are
// evaluated per row so a single row reports every violation at once; rows
// with no violations come back in original order.
func ValidateItemRows(rows []ItemImportRow) ([]ItemImportRow, []RowError) {
	validRows := make([]ItemImportRow, 0, len(rows))
	var errors []RowError

	for _, row := range rows {
		var rowErrors []string

		if row.InternalItemName == "" {
			rowErrors = append(rowErrors, "Missing internal_item_name")
		}
		if !row.TenantID.Set || !row.TenantID.Valid || row.TenantID.Value == 0 {
			rowErrors = append(rowErrors, "Missing tenant_id")
		}
		if !models.IsValidItemType(models.ItemType(row.Type)) {
			rowErrors = append(rowErrors, "Invalid type value")
		}
		if !models.IsValidUoM(models.ItemUoM(row.UoM)) {
			rowErrors = append(rowErrors, "Invalid UoM value")
		}
		if row.Type == string(models.SellItemType) && row.ScrapType == "" {
			rowErrors = append(rowErrors, "Missing scrap_type for sell item")
		}

		maxOK := row.MaxBuffer.Set && row.MaxBuffer.Valid
		minOK := row.MinBuffer.Set && row.MinBuffer.Valid
		if maxOK && minOK && row.MaxBuffer.Value < row.MinBuffer.Value {
			rowErrors = append(rowErrors, "max_buffer less than min_buffer")
		}
		if !maxOK || !minOK {
			rowErrors = append(rowErrors, "Buffer values must be numbers")
		}

		if len(rowErrors) > 0 {
			errors = append(errors, RowError{Row: row.SourceRow, Errors: rowErrors})
		} else {
			validRows = append(validRows, row)
		}
	}

	return validRows, errors
}
