package services

import (
	"reflect"
	"testing"
)

func validItemRow(sourceRow int) ItemImportRow {
	return ItemImportRow{
		SourceRow:        sourceRow,
		InternalItemName: "Steel Rod",
		TenantID:         parseNumberCell("123"),
		UoM:              "kgs",
		Type:             "component",
		MaxBuffer:        parseNumberCell("20"),
		MinBuffer:        parseNumberCell("10"),
	}
}

func TestValidateItemRows(t *testing.T) {
	t.Run("clean rows pass through in original order", func(t *testing.T) {
		rows := []ItemImportRow{validItemRow(1), validItemRow(2), validItemRow(3)}

		validRows, rowErrors := ValidateItemRows(rows)
		if len(rowErrors) != 0 {
			t.Fatalf("unexpected errors: %v", rowErrors)
		}
		for i, row := range validRows {
			if row.SourceRow != i+1 {
				t.Errorf("position %d has SourceRow %d", i, row.SourceRow)
			}
		}
	})

	t.Run("every violated rule on a row is reported at once", func(t *testing.T) {
		row := validItemRow(1)
		row.Type = "sell"
		row.ScrapType = ""
		row.MaxBuffer = parseNumberCell("10")
		row.MinBuffer = parseNumberCell("20")

		_, rowErrors := ValidateItemRows([]ItemImportRow{row})
		if len(rowErrors) != 1 {
			t.Fatalf("got %d error rows, want 1", len(rowErrors))
		}
		want := []string{
			"Missing scrap_type for sell item",
			"max_buffer less than min_buffer",
		}
		if !reflect.DeepEqual(rowErrors[0].Errors, want) {
			t.Errorf("errors = %v, want %v", rowErrors[0].Errors, want)
		}
	})

	t.Run("rule matrix", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(*ItemImportRow)
			message string
		}{
			{
				name:    "missing name",
				mutate:  func(r *ItemImportRow) { r.InternalItemName = "" },
				message: "Missing internal_item_name",
			},
			{
				name:    "missing tenant",
				mutate:  func(r *ItemImportRow) { r.TenantID = parseNumberCell("") },
				message: "Missing tenant_id",
			},
			{
				name:    "zero tenant",
				mutate:  func(r *ItemImportRow) { r.TenantID = parseNumberCell("0") },
				message: "Missing tenant_id",
			},
			{
				name:    "unknown type",
				mutate:  func(r *ItemImportRow) { r.Type = "resale" },
				message: "Invalid type value",
			},
			{
				name:    "upper-case type is rejected",
				mutate:  func(r *ItemImportRow) { r.Type = "Sell" },
				message: "Invalid type value",
			},
			{
				name:    "unknown uom",
				mutate:  func(r *ItemImportRow) { r.UoM = "litres" },
				message: "Invalid UoM value",
			},
			{
				name: "sell without scrap type",
				mutate: func(r *ItemImportRow) {
					r.Type = "sell"
					r.ScrapType = ""
				},
				message: "Missing scrap_type for sell item",
			},
			{
				name: "buffer inversion",
				mutate: func(r *ItemImportRow) {
					r.MaxBuffer = parseNumberCell("5")
					r.MinBuffer = parseNumberCell("9")
				},
				message: "max_buffer less than min_buffer",
			},
			{
				name:    "non-numeric buffer",
				mutate:  func(r *ItemImportRow) { r.MaxBuffer = parseNumberCell("lots") },
				message: "Buffer values must be numbers",
			},
			{
				name:    "missing buffer",
				mutate:  func(r *ItemImportRow) { r.MinBuffer = parseNumberCell("") },
				message: "Buffer values must be numbers",
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				row := validItemRow(1)
				tc.mutate(&row)

				validRows, rowErrors := ValidateItemRows([]ItemImportRow{row})
				if len(validRows) != 0 {
					t.Fatal("row should have been rejected")
				}
				if len(rowErrors) != 1 {
					t.Fatalf("got %d error rows, want 1", len(rowErrors))
				}
				if !containsMessage(rowErrors[0].Errors, tc.message) {
					t.Errorf("errors = %v, want to contain %q", rowErrors[0].Errors, tc.message)
				}
			})
		}
	})

	t.Run("sell item with scrap type is accepted", func(t *testing.T) {
		row := validItemRow(1)
		row.Type = "sell"
		row.ScrapType = "metal"

		validRows, rowErrors := ValidateItemRows([]ItemImportRow{row})
		if len(rowErrors) != 0 {
			t.Fatalf("unexpected errors: %v", rowErrors)
		}
		if len(validRows) != 1 {
			t.Fatalf("got %d valid rows, want 1", len(validRows))
		}
	})

	t.Run("error rows keep their 1-based source index", func(t *testing.T) {
		bad := validItemRow(2)
		bad.InternalItemName = ""
		rows := []ItemImportRow{validItemRow(1), bad, validItemRow(3)}

		validRows, rowErrors := ValidateItemRows(rows)
		if len(validRows) != 2 {
			t.Fatalf("got %d valid rows, want 2", len(validRows))
		}
		if len(rowErrors) != 1 || rowErrors[0].Row != 2 {
			t.Errorf("rowErrors = %v, want one error at row 2", rowErrors)
		}
	})

	t.Run("validation is repeatable", func(t *testing.T) {
		bad := validItemRow(1)
		bad.UoM = "litres"
		rows := []ItemImportRow{bad}

		_, first := ValidateItemRows(rows)
		_, second := ValidateItemRows(rows)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("repeat run differs: %v vs %v", first, second)
		}
	})
}

func containsMessage(messages []string, want string) bool {
	for _, m := range messages {
		if m == want {
			return true
		}
	}
	return false
}
