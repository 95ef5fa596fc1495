package services

import (
	"testing"

	"inventory-sync-backend/db/models"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		errors  []RowError
		outcome ImportOutcome
		status  models.ImportRunStatus
	}{
		{
			name:    "no errors and no failures is completed",
			outcome: ImportOutcome{ValidatedCount: 3, SubmittedCount: 3, Failures: map[int]string{}},
			status:  models.RunCompletedStatus,
		},
		{
			name:   "any validation error is rejected",
			errors: []RowError{{Row: 2, Errors: []string{"Missing tenant_id"}}},
			status: models.RunRejectedStatus,
		},
		{
			name: "submission failures without validation errors is partial",
			outcome: ImportOutcome{
				ValidatedCount: 3,
				SubmittedCount: 2,
				Failures:       map[int]string{3: "remote store returned status 500"},
			},
			status: models.RunPartialStatus,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			report := Summarize(tc.errors, tc.outcome)
			if report.Status != tc.status {
				t.Errorf("Status = %q, want %q", report.Status, tc.status)
			}
			if report.ErrorRowCount != len(tc.errors) {
				t.Errorf("ErrorRowCount = %d, want %d", report.ErrorRowCount, len(tc.errors))
			}
			if report.FailedCount != len(tc.outcome.Failures) {
				t.Errorf("FailedCount = %d, want %d", report.FailedCount, len(tc.outcome.Failures))
			}
			if report.SubmittedCount != tc.outcome.SubmittedCount {
				t.Errorf("SubmittedCount = %d, want %d", report.SubmittedCount, tc.outcome.SubmittedCount)
			}
		})
	}
}
