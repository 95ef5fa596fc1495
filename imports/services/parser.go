package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSXContentType is the declared media type an upload must carry.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ParseWorkbook decodes an uploaded workbook into raw rows. Only the first
// sheet is read; its first row supplies the field names. A sheet holding
// nothing but the header yields zero rows and no error.
func ParseWorkbook(fileBytes []byte) ([]RawRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(fileBytes))
	if err != nil {
		return nil, &StageError{Stage: StageParse, Err: fmt.Errorf("failed to open workbook: %w", err)}
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, &StageError{Stage: StageParse, Err: fmt.Errorf("workbook contains no sheets")}
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, &StageError{Stage: StageParse, Err: fmt.Errorf("failed to read rows from sheet %s: %w", sheetName, err)}
	}
	if len(rows) == 0 {
		return []RawRow{}, nil
	}

	headers := rows[0]
	rawRows := make([]RawRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rawRow := RawRow{}
		empty := true
		for col, header := range headers {
			header = strings.TrimSpace(header)
			if header == "" {
				continue
			}
			var cell string
			if col < len(row) {
				cell = strings.TrimSpace(row[col])
			}
			if cell != "" {
				empty = false
			}
			rawRow[header] = cell
		}
		// GetRows already drops trailing blank rows; interior blanks are
		// skipped here the way sheet readers skip them.
		if empty {
			continue
		}
		rawRows = append(rawRows, rawRow)
	}

	return rawRows, nil
}
