package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"inventory-sync-backend/db/models"

	"github.com/xuri/excelize/v2"
)

const reportDir = "./public/files"

var errorReportHeaders = []string{"Row", "Reason", "ErrorType", "EntityKind", "CreatedBy", "RawRow"}

// EnsureDirectoryExists ensures the specified directory exists before file saving
func EnsureDirectoryExists(filePath string) error {
	dir := filepath.Dir(filePath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			return fmt.Errorf("error creating directory: %v", err)
		}
	}
	return nil
}

// GenerateErrorReportExcel writes the rejected rows of one import run to a
// workbook under public/files and returns the public path for download links.
func GenerateErrorReportExcel(rows []models.ImportErrorLog, runID string) (string, error) {
	if err := EnsureDirectoryExists(reportDir + "/x"); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("error creating sheet: %v", err)
	}

	for col, header := range errorReportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return "", fmt.Errorf("error setting header %s: %v", header, err)
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.RowIndex,
			row.Reason,
			string(row.ErrorType),
			row.EntityKind,
			row.CreatedBy,
			string(row.RawRow),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return "", err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return "", fmt.Errorf("error writing row %d: %v", i+2, err)
			}
		}
	}

	f.SetActiveSheet(index)

	fileName := fmt.Sprintf("import_errors_%s_%s.xlsx", runID, time.Now().Format("2006-01-02_15-04-05"))
	relativeFilePath := fmt.Sprintf("%s/%s", reportDir, fileName)
	if err := f.SaveAs(relativeFilePath); err != nil {
		return "", err
	}

	return fmt.Sprintf("/public/files/%s", fileName), nil
}
