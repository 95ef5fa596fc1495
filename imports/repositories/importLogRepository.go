package repositories

import (
	"inventory-sync-backend/db/models"

	"gorm.io/gorm"
)

// ImportLogRepository persists the audit trail of bulk import runs. The
// remote store keeps the records themselves; this keeps who uploaded what,
// when, and which rows were turned away.
type ImportLogRepository interface {
	CreateRun(run *models.ImportRunLog) error
	CreateErrorLogs(rows []models.ImportErrorLog) error
	ListRuns(limit int) ([]models.ImportRunLog, error)
	GetRunErrors(runID string) ([]models.ImportErrorLog, error)
	LogEmailSent(log *models.EmailLog) error
}

type importLogRepository struct {
	db *gorm.DB
}

func NewImportLogRepository(db *gorm.DB) ImportLogRepository {
	return &importLogRepository{db: db}
}

func (r *importLogRepository) CreateRun(run *models.ImportRunLog) error {
	return r.db.Create(run).Error
}

func (r *importLogRepository) CreateErrorLogs(rows []models.ImportErrorLog) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.Create(&rows).Error
}

func (r *importLogRepository) ListRuns(limit int) ([]models.ImportRunLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var runs []models.ImportRunLog
	err := r.db.Order("created_at DESC").Limit(limit).Find(&runs).Error
	return runs, err
}

func (r *importLogRepository) GetRunErrors(runID string) ([]models.ImportErrorLog, error) {
	var rows []models.ImportErrorLog
	err := r.db.Where("run_id = ?", runID).Order("row_index").Find(&rows).Error
	return rows, err
}

func (r *importLogRepository) LogEmailSent(log *models.EmailLog) error {
	return r.db.Create(log).Error
}
