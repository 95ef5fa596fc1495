package services

import (
	"context"

	"inventory-sync-backend/db/models"

	"go.uber.org/zap"
)

// ItemCreator is the slice of the item store the submitter needs.
type ItemCreator interface {
	CreateItem(ctx context.Context, item models.ItemRecord) (*models.ItemRecord, error)
}

// BOMCreator is the slice of the BOM store the submitter needs.
type BOMCreator interface {
	CreateBOM(ctx context.Context, bom models.BOMRecord) (*models.BOMRecord, error)
}

// Submitter posts validated rows to the remote store one at a time, in
// source order. Submissions are strictly sequential: the remote store sees
// writes in row order and never more than one in flight. A failed row is
// recorded and the loop carries on; there is no retry and no rollback.
type Submitter struct {
	items    ItemCreator
	boms     BOMCreator
	logger   *zap.Logger
	notifier ProgressNotifier
}

func NewSubmitter(items ItemCreator, boms BOMCreator, logger *zap.Logger, notifier ProgressNotifier) *Submitter {
	return &Submitter{items: items, boms: boms, logger: logger, notifier: notifier}
}

// SubmitItems submits item rows sequentially. The context is checked before
// each submission; on cancellation the partial outcome is returned along
// with the context error. Already-submitted rows stay submitted.
func (s *Submitter) SubmitItems(ctx context.Context, rows []ItemImportRow) (ImportOutcome, error) {
	outcome := ImportOutcome{
		ValidatedCount: len(rows),
		Failures:       make(map[int]string),
	}

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return outcome, err
		}
		s.publishProgress(ItemsKind, i+1, len(rows))

		if _, err := s.items.CreateItem(ctx, row.Record()); err != nil {
			s.logger.Warn("Item submission failed",
				zap.Int("row", row.SourceRow),
				zap.Error(err),
			)
			outcome.Failures[row.SourceRow] = err.Error()
			continue
		}
		outcome.SubmittedCount++
	}

	return outcome, nil
}

// SubmitBOMs submits BOM rows sequentially; semantics match SubmitItems.
func (s *Submitter) SubmitBOMs(ctx context.Context, rows []BOMImportRow) (ImportOutcome, error) {
	outcome := ImportOutcome{
		ValidatedCount: len(rows),
		Failures:       make(map[int]string),
	}

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return outcome, err
		}
		s.publishProgress(BOMKind, i+1, len(rows))

		if _, err := s.boms.CreateBOM(ctx, row.Record()); err != nil {
			s.logger.Warn("BOM submission failed",
				zap.Int("row", row.SourceRow),
				zap.Error(err),
			)
			outcome.Failures[row.SourceRow] = err.Error()
			continue
		}
		outcome.SubmittedCount++
	}

	return outcome, nil
}

func (s *Submitter) publishProgress(kind EntityKind, row, total int) {
	if s.notifier == nil {
		return
	}
	s.notifier.Publish(ProgressEvent{
		Stage: "submit",
		Kind:  kind,
		Row:   row,
		Total: total,
	})
}
