package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	bleveRepositories "inventory-sync-backend/bleve/repositories"
	"inventory-sync-backend/config"
	"inventory-sync-backend/db/models"
	"inventory-sync-backend/imports/repositories"
	"inventory-sync-backend/imports/services"
	"inventory-sync-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type UploadController struct {
	ImportService *services.ImportService
	ImportLogRepo repositories.ImportLogRepository
	BleveRepo     bleveRepositories.BleveRepositoryInterface
	RedisClient   *redis.Client
}

// BulkUploadController handles the bulk upload of items or BOM entries via
// a spreadsheet file.
func (uc *UploadController) BulkUploadController(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Failed to get file"})
	}
	if fileHeader.Header.Get("Content-Type") != services.XLSXContentType {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Please upload a valid XLSX file"})
	}

	uploadType := services.EntityKind(c.FormValue("type"))
	if !services.IsValidEntityKind(uploadType) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Upload type must be 'items' or 'bom'"})
	}

	userEmail := c.FormValue("created_by")
	if userEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing 'created_by' field in FormData"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to open uploaded file"})
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to read uploaded file"})
	}

	result, err := uc.ImportService.Run(c.UserContext(), fileBytes, uploadType)
	if err != nil {
		if errors.Is(err, services.ErrImportInProgress) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Another import is already in progress",
			})
		}
		var stageErr *services.StageError
		if errors.As(err, &stageErr) {
			status := fiber.StatusInternalServerError
			switch stageErr.Stage {
			case services.StageParse:
				status = fiber.StatusBadRequest
			case services.StageReferenceFetch:
				status = fiber.StatusBadGateway
			}
			return c.Status(status).JSON(fiber.Map{
				"message": fmt.Sprintf("Import failed at %s stage", stageErr.Stage),
				"stage":   stageErr.Stage,
				"error":   stageErr.Err.Error(),
			})
		}
		config.Logger.Error("Import run failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Import failed", "error": err.Error()})
	}

	errorLogs := uc.buildErrorLogs(result, userEmail)
	uc.persistAudit(result, fileHeader.Filename, userEmail, errorLogs)

	var downloadLink string
	if len(errorLogs) > 0 {
		filePath, err := utils.GenerateErrorReportExcel(errorLogs, result.RunID.String())
		if err != nil {
			config.Logger.Warn("Failed to generate error report workbook", zap.Error(err))
		} else {
			downloadLink = utils.GetDownloadURL(c, filePath)
			services.StartErrorReportEmail(uc.RedisClient, uc.ImportLogRepo, result.RunID, userEmail, downloadLink)
		}
	}

	if len(result.Errors) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message":       fmt.Sprintf("Validation errors found for %s", strings.ToUpper(string(uploadType))),
			"run_id":        result.RunID,
			"errors":        result.Errors,
			"download_link": downloadLink,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":         "Bulk upload completed",
		"run_id":          result.RunID,
		"validated_count": result.Report.ValidatedCount,
		"submitted_count": result.Report.SubmittedCount,
		"failed_count":    result.Report.FailedCount,
		"failures":        result.Report.Failures,
		"canceled":        result.Canceled,
		"download_link":   downloadLink,
	})
}

func (uc *UploadController) buildErrorLogs(result *services.RunResult, userEmail string) []models.ImportErrorLog {
	logs := make([]models.ImportErrorLog, 0, len(result.Rejected))
	for _, rejected := range result.Rejected {
		payload, err := json.Marshal(rejected.Raw)
		if err != nil {
			payload = []byte("{}")
		}
		logs = append(logs, models.ImportErrorLog{
			ID:         uuid.New(),
			RunID:      result.RunID,
			EntityKind: string(result.Kind),
			RowIndex:   rejected.RowIndex,
			Reason:     rejected.Reason,
			RawRow:     datatypes.JSON(payload),
			ErrorType:  rejected.ErrorType,
			AddedVia:   models.BulkAddedViaType,
			CreatedBy:  userEmail,
		})
	}
	return logs
}

// persistAudit records the run and its rejected rows. Audit failures are
// logged but never fail the upload.
func (uc *UploadController) persistAudit(result *services.RunResult, fileName, userEmail string, errorLogs []models.ImportErrorLog) {
	if uc.ImportLogRepo != nil {
		runLog := models.ImportRunLog{
			ID:             result.RunID,
			EntityKind:     string(result.Kind),
			SourceFileName: fileName,
			UploadedBy:     userEmail,
			RowCount:       result.RowCount,
			ValidatedCount: result.Report.ValidatedCount,
			SubmittedCount: result.Report.SubmittedCount,
			ErrorCount:     len(result.Errors),
			Status:         result.Report.Status,
		}
		if err := uc.ImportLogRepo.CreateRun(&runLog); err != nil {
			config.Logger.Warn("Failed to persist import run log", zap.Error(err))
		}
		if err := uc.ImportLogRepo.CreateErrorLogs(errorLogs); err != nil {
			config.Logger.Warn("Failed to persist import error logs", zap.Error(err))
		}
	}

	if uc.BleveRepo != nil {
		for _, errorLog := range errorLogs {
			if err := uc.BleveRepo.IndexImportError(errorLog); err != nil {
				// Indexing is eventually consistent; a miss only degrades search.
				config.Logger.Warn("Failed to index import error row",
					zap.String("id", errorLog.ID.String()),
					zap.Error(err),
				)
			}
		}
	}
}
