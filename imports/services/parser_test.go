package services

import (
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes a single-sheet workbook with the given header and
// data rows and returns its bytes.
func buildWorkbook(t *testing.T, headers []string, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			t.Fatalf("coordinates: %v", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			t.Fatalf("set header: %v", err)
		}
	}
	for rowIdx, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				t.Fatalf("coordinates: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestParseWorkbook(t *testing.T) {
	t.Run("maps header names to cell values in row order", func(t *testing.T) {
		data := buildWorkbook(t,
			[]string{"item_id", "component_id", "quantity"},
			[][]interface{}{
				{1, 2, 5},
				{3, 4, 10},
			},
		)

		rows, err := ParseWorkbook(data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("got %d rows, want 2", len(rows))
		}
		if rows[0]["item_id"] != "1" || rows[0]["quantity"] != "5" {
			t.Errorf("row 1 = %v, want item_id=1 quantity=5", rows[0])
		}
		if rows[1]["component_id"] != "4" {
			t.Errorf("row 2 component_id = %q, want 4", rows[1]["component_id"])
		}
	})

	t.Run("header-only sheet yields zero rows and no error", func(t *testing.T) {
		data := buildWorkbook(t, []string{"item_id", "component_id", "quantity"}, nil)

		rows, err := ParseWorkbook(data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 0 {
			t.Errorf("got %d rows, want 0", len(rows))
		}
	})

	t.Run("short rows leave trailing columns empty", func(t *testing.T) {
		data := buildWorkbook(t,
			[]string{"item_id", "component_id", "quantity"},
			[][]interface{}{{7}},
		)

		rows, err := ParseWorkbook(data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("got %d rows, want 1", len(rows))
		}
		if rows[0]["item_id"] != "7" {
			t.Errorf("item_id = %q, want 7", rows[0]["item_id"])
		}
		if rows[0]["quantity"] != "" {
			t.Errorf("quantity = %q, want empty", rows[0]["quantity"])
		}
	})

	t.Run("malformed byte stream is a parse stage error", func(t *testing.T) {
		_, err := ParseWorkbook([]byte("this is not a workbook"))
		if err == nil {
			t.Fatal("expected an error for malformed input")
		}
		var stageErr *StageError
		if !errors.As(err, &stageErr) {
			t.Fatalf("error type = %T, want *StageError", err)
		}
		if stageErr.Stage != StageParse {
			t.Errorf("stage = %q, want %q", stageErr.Stage, StageParse)
		}
	})
}
