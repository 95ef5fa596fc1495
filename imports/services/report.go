package services

import (
	"inventory-sync-backend/db/models"
)

// ImportReport is the aggregated outcome of one run, shaped for a UI table
// or a log line.
type ImportReport struct {
	ValidatedCount   int                    `json:"validated_count"`
	SubmittedCount   int                    `json:"submitted_count"`
	FailedCount      int                    `json:"failed_count"`
	ErrorRowCount    int                    `json:"error_row_count"`
	ValidationErrors []RowError             `json:"validation_errors"`
	Failures         map[int]string         `json:"failures"`
	Status           models.ImportRunStatus `json:"status"`
}

// Summarize folds validation errors and the submission outcome into one
// report. Pure aggregation, no side effects.
func Summarize(errors []RowError, outcome ImportOutcome) ImportReport {
	report := ImportReport{
		ValidatedCount:   outcome.ValidatedCount,
		SubmittedCount:   outcome.SubmittedCount,
		FailedCount:      len(outcome.Failures),
		ErrorRowCount:    len(errors),
		ValidationErrors: errors,
		Failures:         outcome.Failures,
	}

	switch {
	case len(errors) > 0:
		report.Status = models.RunRejectedStatus
	case len(outcome.Failures) > 0:
		report.Status = models.RunPartialStatus
	default:
		report.Status = models.RunCompletedStatus
	}

	return report
}
