package services

import (
	"context"
	"fmt"
	"time"

	"inventory-sync-backend/config"
	"inventory-sync-backend/db/models"
	"inventory-sync-backend/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// EmailLogger is the slice of the audit store the report mailer needs.
type EmailLogger interface {
	LogEmailSent(log *models.EmailLog) error
}

// StartErrorReportEmail emails the uploader a link to the generated error
// report in the background. A Redis flag marks the run as having a report
// in flight so the work is visible to operators; delivery failures are
// logged and never affect the import response.
func StartErrorReportEmail(redisClient *redis.Client, logRepo EmailLogger, runID uuid.UUID, recipient, downloadLink string) {
	ctx := context.Background()
	flagKey := "import_report:" + runID.String()

	if redisClient != nil {
		if err := redisClient.Set(ctx, flagKey, "true", time.Hour).Err(); err != nil {
			config.Logger.Warn("Failed to set report processing flag in Redis", zap.Error(err))
		}
	}

	go func() {
		defer func() {
			if redisClient != nil {
				if err := redisClient.Del(ctx, flagKey).Err(); err != nil {
					config.Logger.Warn("Failed to clear report processing flag in Redis", zap.Error(err))
				}
			}
		}()

		message := "Please find the attached file with error records (validation and submission failures)."
		subject := "Import Errors - " + time.Now().Format("2006-01-02 15:04:05")

		if err := utils.SendEmail(recipient, message, subject, downloadLink); err != nil {
			config.Logger.Warn("Failed to send error report email",
				zap.String("run_id", runID.String()),
				zap.String("recipient", recipient),
				zap.Error(err),
			)
			return
		}

		active := true
		emailLog := models.EmailLog{
			ID:             uuid.New(),
			Recipient:      recipient,
			Subject:        subject,
			Message:        message,
			SentAt:         time.Now(),
			Active:         &active,
			AttachmentPath: downloadLink,
		}
		if logRepo != nil {
			if err := logRepo.LogEmailSent(&emailLog); err != nil {
				fmt.Println("Warning: Failed to log email:", err)
			}
		}
	}()
}
