package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ImportErrorType string

const (
	ValidationErrorType ImportErrorType = "validation"
	SubmissionErrorType ImportErrorType = "submission"
)

type AddedViaType string

const (
	BulkAddedViaType AddedViaType = "bulk_upload"
)

type ImportRunStatus string

const (
	RunCompletedStatus ImportRunStatus = "completed"
	RunRejectedStatus  ImportRunStatus = "rejected" // batch gated by validation errors
	RunPartialStatus   ImportRunStatus = "partial"  // some submissions failed
	RunCanceledStatus  ImportRunStatus = "canceled"
)

// ImportRunLog records one bulk import run end to end.
type ImportRunLog struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;" json:"id"`
	EntityKind     string          `gorm:"not null;index" json:"entity_kind"`
	SourceFileName string          `json:"source_file_name"`
	UploadedBy     string          `gorm:"not null" json:"uploaded_by"`
	RowCount       int             `json:"row_count"`
	ValidatedCount int             `json:"validated_count"`
	SubmittedCount int             `json:"submitted_count"`
	ErrorCount     int             `json:"error_count"`
	Status         ImportRunStatus `gorm:"index" json:"status"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// ImportErrorLog records one rejected or failed source row of a run. The raw
// row is kept as JSON so the error report can be rebuilt later.
type ImportErrorLog struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key;" json:"id"`
	RunID      uuid.UUID       `gorm:"type:uuid;index" json:"run_id"`
	EntityKind string          `gorm:"index" json:"entity_kind"`
	RowIndex   int             `json:"row_index"`
	Reason     string          `json:"reason"`
	RawRow     datatypes.JSON  `json:"raw_row"`
	ErrorType  ImportErrorType `gorm:"index" json:"error_type"`
	AddedVia   AddedViaType    `json:"added_via"`
	CreatedBy  string          `json:"created_by"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
