package services

import (
	"testing"
	"time"
)

func TestParseNumberCell(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		set   bool
		valid bool
		value float64
	}{
		{name: "empty cell is unset", raw: "", set: false, valid: false},
		{name: "integer text", raw: "42", set: true, valid: true, value: 42},
		{name: "decimal text", raw: "12.5", set: true, valid: true, value: 12.5},
		{name: "non-numeric text is set but invalid", raw: "ten", set: true, valid: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cell := parseNumberCell(tc.raw)
			if cell.Set != tc.set {
				t.Errorf("Set = %v, want %v", cell.Set, tc.set)
			}
			if cell.Valid != tc.valid {
				t.Errorf("Valid = %v, want %v", cell.Valid, tc.valid)
			}
			if tc.valid && cell.Value != tc.value {
				t.Errorf("Value = %v, want %v", cell.Value, tc.value)
			}
		})
	}
}

func TestParseBoolCell(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"true", true},
		{"TRUE", false},
		{"True", false},
		{"1", false},
		{"yes", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := parseBoolCell(tc.raw); got != tc.want {
			t.Errorf("parseBoolCell(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeItemRow(t *testing.T) {
	t.Run("fills audit defaults when columns are absent", func(t *testing.T) {
		row := NormalizeItemRow(RawRow{"internal_item_name": "Steel Rod"}, 1)

		if row.CreatedBy != SystemUploadUser {
			t.Errorf("CreatedBy = %q, want %q", row.CreatedBy, SystemUploadUser)
		}
		if row.LastUpdatedBy != SystemUploadUser {
			t.Errorf("LastUpdatedBy = %q, want %q", row.LastUpdatedBy, SystemUploadUser)
		}
		if _, err := time.Parse(time.RFC3339, row.CreatedAt); err != nil {
			t.Errorf("CreatedAt %q is not RFC3339: %v", row.CreatedAt, err)
		}
		if _, err := time.Parse(time.RFC3339, row.UpdatedAt); err != nil {
			t.Errorf("UpdatedAt %q is not RFC3339: %v", row.UpdatedAt, err)
		}
	})

	t.Run("keeps provided audit columns", func(t *testing.T) {
		raw := RawRow{
			"internal_item_name": "Steel Rod",
			"created_by":         "operator_7",
			"createdAt":          "2024-01-15T09:00:00Z",
		}
		row := NormalizeItemRow(raw, 3)

		if row.CreatedBy != "operator_7" {
			t.Errorf("CreatedBy = %q, want operator_7", row.CreatedBy)
		}
		if row.CreatedAt != "2024-01-15T09:00:00Z" {
			t.Errorf("CreatedAt = %q, want the sheet value", row.CreatedAt)
		}
		if row.SourceRow != 3 {
			t.Errorf("SourceRow = %d, want 3", row.SourceRow)
		}
	})

	t.Run("reads flattened additional attribute headers", func(t *testing.T) {
		raw := RawRow{
			"internal_item_name":                            "Gear",
			"additional_attributes__scrap_type":             "metal",
			"additional_attributes__avg_weight_needed":      "true",
			"additional_attributes__drawing_revision_number": "4",
		}
		row := NormalizeItemRow(raw, 1)

		if row.ScrapType != "metal" {
			t.Errorf("ScrapType = %q, want metal", row.ScrapType)
		}
		if !row.AvgWeightNeeded {
			t.Error("AvgWeightNeeded = false, want true")
		}
		if !row.DrawingRevisionNumber.Valid || row.DrawingRevisionNumber.Int() != 4 {
			t.Errorf("DrawingRevisionNumber = %+v, want valid 4", row.DrawingRevisionNumber)
		}
	})

	t.Run("never fails on bad input, leaves it for validation", func(t *testing.T) {
		raw := RawRow{
			"tenant_id":  "not-a-number",
			"max_buffer": "plenty",
		}
		row := NormalizeItemRow(raw, 2)

		if row.TenantID.Valid {
			t.Error("TenantID should be invalid")
		}
		if !row.TenantID.Set {
			t.Error("TenantID should be set")
		}
		if row.MaxBuffer.Valid {
			t.Error("MaxBuffer should be invalid")
		}
	})
}

func TestNormalizeBOMRow(t *testing.T) {
	raw := RawRow{
		"item_id":      "10",
		"component_id": "20",
		"quantity":     "5",
	}
	row := NormalizeBOMRow(raw, 4)

	if row.SourceRow != 4 {
		t.Errorf("SourceRow = %d, want 4", row.SourceRow)
	}
	if row.ItemID.Int() != 10 || row.ComponentID.Int() != 20 || row.Quantity.Int() != 5 {
		t.Errorf("ids/quantity = %d/%d/%d, want 10/20/5",
			row.ItemID.Int(), row.ComponentID.Int(), row.Quantity.Int())
	}
	if row.CreatedBy != SystemUploadUser {
		t.Errorf("CreatedBy = %q, want %q", row.CreatedBy, SystemUploadUser)
	}
}
