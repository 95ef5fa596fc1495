package services

import (
	"context"
	"errors"
	"strings"

	"inventory-sync-backend/db/models"

	"github.com/google/uuid"
	uberatomic "go.uber.org/atomic"
	"go.uber.org/zap"
)

// ErrImportInProgress is returned when a run is started while a previous
// run's submissions are still in flight. The UI disables its trigger, but
// the pipeline enforces the guard itself so it stays correct when called
// without that guard.
var ErrImportInProgress = errors.New("an import run is already in progress")

// ReferenceItemFetcher supplies the item collection BOM validation checks
// against. One fetch per run; a fetch failure is fatal to the run.
type ReferenceItemFetcher interface {
	GetItems(ctx context.Context) ([]models.ItemRecord, error)
}

// RejectedRow pairs a source row with the reason it was not stored, for the
// audit log and the downloadable error report.
type RejectedRow struct {
	RowIndex  int
	Reason    string
	Raw       RawRow
	ErrorType models.ImportErrorType
}

// RunResult is everything one import run produced.
type RunResult struct {
	RunID    uuid.UUID
	Kind     EntityKind
	RowCount int
	Errors   []RowError
	Outcome  ImportOutcome
	Report   ImportReport
	Rejected []RejectedRow
	Canceled bool
}

// ImportService runs the bulk import pipeline: parse, normalize, validate,
// submit. At most one run may be in flight at a time.
type ImportService struct {
	reference ReferenceItemFetcher
	submitter *Submitter
	cfg       ValidationConfig
	notifier  ProgressNotifier
	logger    *zap.Logger
	running   *uberatomic.Bool
}

func NewImportService(
	reference ReferenceItemFetcher,
	submitter *Submitter,
	cfg ValidationConfig,
	notifier ProgressNotifier,
	logger *zap.Logger,
) *ImportService {
	return &ImportService{
		reference: reference,
		submitter: submitter,
		cfg:       cfg,
		notifier:  notifier,
		logger:    logger,
		running:   uberatomic.NewBool(false),
	}
}

// Run executes one import over fileBytes for the given entity kind.
//
// A batch with any validation error is gated in full: nothing is submitted
// until the sheet comes back clean. Submission failures do not gate the
// batch; they are per-row and the run carries on. Cancellation stops the
// run before the next submission without rolling back rows already stored;
// the partial result is returned with Canceled set.
func (s *ImportService) Run(ctx context.Context, fileBytes []byte, kind EntityKind) (*RunResult, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrImportInProgress
	}
	defer s.running.Store(false)

	runID := uuid.New()
	result := &RunResult{RunID: runID, Kind: kind}

	s.publish(ProgressEvent{RunID: runID, Stage: StageParse, Kind: kind})
	rawRows, err := ParseWorkbook(fileBytes)
	if err != nil {
		s.logger.Error("Workbook parse failed", zap.String("run_id", runID.String()), zap.Error(err))
		return nil, err
	}
	result.RowCount = len(rawRows)

	switch kind {
	case ItemsKind:
		return s.runItems(ctx, result, rawRows)
	case BOMKind:
		return s.runBOM(ctx, result, rawRows)
	default:
		return nil, &StageError{Stage: StageParse, Err: errors.New("unsupported entity kind: " + string(kind))}
	}
}

func (s *ImportService) runItems(ctx context.Context, result *RunResult, rawRows []RawRow) (*RunResult, error) {
	rows := make([]ItemImportRow, 0, len(rawRows))
	for i, raw := range rawRows {
		rows = append(rows, NormalizeItemRow(raw, i+1))
	}

	validRows, rowErrors := ValidateItemRows(rows)
	result.Errors = rowErrors
	if len(rowErrors) > 0 {
		s.gate(result, rawRows)
		return result, nil
	}

	outcome, err := s.submitter.SubmitItems(ctx, validRows)
	s.finish(result, rawRows, outcome, err)
	return result, nil
}

func (s *ImportService) runBOM(ctx context.Context, result *RunResult, rawRows []RawRow) (*RunResult, error) {
	s.publish(ProgressEvent{RunID: result.RunID, Stage: StageReferenceFetch, Kind: BOMKind})
	referenceItems, err := s.reference.GetItems(ctx)
	if err != nil {
		s.logger.Error("Reference item fetch failed", zap.String("run_id", result.RunID.String()), zap.Error(err))
		return nil, &StageError{Stage: StageReferenceFetch, Err: err}
	}

	rows := make([]BOMImportRow, 0, len(rawRows))
	for i, raw := range rawRows {
		rows = append(rows, NormalizeBOMRow(raw, i+1))
	}

	validRows, rowErrors := ValidateBOMRows(rows, referenceItems, s.cfg)
	result.Errors = rowErrors
	if len(rowErrors) > 0 {
		s.gate(result, rawRows)
		return result, nil
	}

	outcome, err := s.submitter.SubmitBOMs(ctx, validRows)
	s.finish(result, rawRows, outcome, err)
	return result, nil
}

// gate finalizes a run rejected by validation: no submissions at all.
func (s *ImportService) gate(result *RunResult, rawRows []RawRow) {
	result.Outcome = ImportOutcome{Failures: map[int]string{}}
	result.Report = Summarize(result.Errors, result.Outcome)
	for _, rowError := range result.Errors {
		result.Rejected = append(result.Rejected, RejectedRow{
			RowIndex:  rowError.Row,
			Reason:    strings.Join(rowError.Errors, ", "),
			Raw:       rawRows[rowError.Row-1],
			ErrorType: models.ValidationErrorType,
		})
	}
	s.publish(ProgressEvent{RunID: result.RunID, Stage: "rejected", Kind: result.Kind, Total: result.RowCount})
}

// finish finalizes a run that reached the submission phase.
func (s *ImportService) finish(result *RunResult, rawRows []RawRow, outcome ImportOutcome, submitErr error) {
	result.Outcome = outcome
	result.Report = Summarize(result.Errors, outcome)
	for rowIndex, reason := range outcome.Failures {
		result.Rejected = append(result.Rejected, RejectedRow{
			RowIndex:  rowIndex,
			Reason:    reason,
			Raw:       rawRows[rowIndex-1],
			ErrorType: models.SubmissionErrorType,
		})
	}
	if submitErr != nil {
		result.Canceled = true
		result.Report.Status = models.RunCanceledStatus
		s.logger.Warn("Import run canceled mid-submission",
			zap.String("run_id", result.RunID.String()),
			zap.Int("submitted", outcome.SubmittedCount),
			zap.Error(submitErr),
		)
	}
	s.publish(ProgressEvent{RunID: result.RunID, Stage: "done", Kind: result.Kind, Total: result.RowCount})
}

func (s *ImportService) publish(event ProgressEvent) {
	if s.notifier == nil {
		return
	}
	s.notifier.Publish(event)
}
