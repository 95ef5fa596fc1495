package services

import (
	"strconv"
	"time"
)

// SystemUploadUser is the audit identity stamped on rows whose source sheet
// carries no created_by / last_updated_by column.
const SystemUploadUser = "system_bulk_upload"

// attributePrefix is the flattened-header convention for the nested
// additional_attributes block, e.g. additional_attributes__scrap_type.
const attributePrefix = "additional_attributes__"

func parseNumberCell(raw string) NumberCell {
	if raw == "" {
		return NumberCell{}
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return NumberCell{Raw: raw, Set: true}
	}
	return NumberCell{Raw: raw, Value: value, Valid: true, Set: true}
}

// parseBoolCell accepts only the literal text "true" (case-sensitive).
func parseBoolCell(raw string) bool {
	return raw == "true"
}

func defaultString(raw, fallback string) string {
	if raw == "" {
		return fallback
	}
	return raw
}

// NormalizeItemRow coerces one raw row into the item import schema. It never
// fails: missing required fields pass through unset and bad numbers are
// marked invalid, both left for validation to report. sourceRow is the row's
// 1-based position in the parsed sheet.
func NormalizeItemRow(raw RawRow, sourceRow int) ItemImportRow {
	now := time.Now().UTC().Format(time.RFC3339)
	return ItemImportRow{
		SourceRow:        sourceRow,
		InternalItemName: raw["internal_item_name"],
		TenantID:         parseNumberCell(raw["tenant_id"]),
		ItemDescription:  raw["item_description"],
		UoM:              raw["uom"],
		Type:             raw["type"],
		MaxBuffer:        parseNumberCell(raw["max_buffer"]),
		MinBuffer:        parseNumberCell(raw["min_buffer"]),
		CustomerItemName: raw["customer_item_name"],
		IsDeleted:        parseBoolCell(raw["is_deleted"]),
		CreatedBy:        defaultString(raw["created_by"], SystemUploadUser),
		LastUpdatedBy:    defaultString(raw["last_updated_by"], SystemUploadUser),
		CreatedAt:        defaultString(raw["createdAt"], now),
		UpdatedAt:        defaultString(raw["updatedAt"], now),

		DrawingRevisionNumber:   parseNumberCell(raw[attributePrefix+"drawing_revision_number"]),
		DrawingRevisionDate:     raw[attributePrefix+"drawing_revision_date"],
		AvgWeightNeeded:         parseBoolCell(raw[attributePrefix+"avg_weight_needed"]),
		ScrapType:               raw[attributePrefix+"scrap_type"],
		ShelfFloorAlternateName: raw[attributePrefix+"shelf_floor_alternate_name"],

		Source: raw,
	}
}

// NormalizeBOMRow coerces one raw row into the BOM import schema. Never
// fails; see NormalizeItemRow.
func NormalizeBOMRow(raw RawRow, sourceRow int) BOMImportRow {
	return BOMImportRow{
		SourceRow:     sourceRow,
		ItemID:        parseNumberCell(raw["item_id"]),
		ComponentID:   parseNumberCell(raw["component_id"]),
		Quantity:      parseNumberCell(raw["quantity"]),
		CreatedBy:     defaultString(raw["created_by"], SystemUploadUser),
		LastUpdatedBy: defaultString(raw["last_updated_by"], SystemUploadUser),
		Source:        raw,
	}
}
