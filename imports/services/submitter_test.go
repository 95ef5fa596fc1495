package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"inventory-sync-backend/db/models"

	"go.uber.org/zap"
)

// fakeItemStore records item submissions in call order and can be told to
// fail specific calls. It also serves as the reference item fetcher for
// pipeline tests.
type fakeItemStore struct {
	created    []models.ItemRecord
	failCalls  map[int]bool // 1-based call number -> fail
	calls      int
	reference  []models.ItemRecord
	fetchErr   error
	blockFirst chan struct{} // when non-nil, first CreateItem waits here
	started    chan struct{}
}

func (f *fakeItemStore) CreateItem(_ context.Context, item models.ItemRecord) (*models.ItemRecord, error) {
	f.calls++
	if f.calls == 1 && f.blockFirst != nil {
		close(f.started)
		<-f.blockFirst
	}
	if f.failCalls[f.calls] {
		return nil, fmt.Errorf("remote store returned status 500")
	}
	f.created = append(f.created, item)
	stored := item
	stored.ID = f.calls
	return &stored, nil
}

func (f *fakeItemStore) GetItems(context.Context) ([]models.ItemRecord, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.reference, nil
}

type fakeBOMStore struct {
	created   []models.BOMRecord
	failCalls map[int]bool
	calls     int
}

func (f *fakeBOMStore) CreateBOM(_ context.Context, bom models.BOMRecord) (*models.BOMRecord, error) {
	f.calls++
	if f.failCalls[f.calls] {
		return nil, errors.New("remote store rejected the record")
	}
	f.created = append(f.created, bom)
	stored := bom
	stored.ID = f.calls
	return &stored, nil
}

func itemRows(n int) []ItemImportRow {
	rows := make([]ItemImportRow, 0, n)
	for i := 1; i <= n; i++ {
		row := validItemRow(i)
		row.InternalItemName = fmt.Sprintf("Item %d", i)
		rows = append(rows, row)
	}
	return rows
}

func TestSubmitItems(t *testing.T) {
	t.Run("submits every row in source order", func(t *testing.T) {
		store := &fakeItemStore{}
		submitter := NewSubmitter(store, &fakeBOMStore{}, zap.NewNop(), nil)

		outcome, err := submitter.SubmitItems(context.Background(), itemRows(4))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.SubmittedCount != 4 || outcome.ValidatedCount != 4 {
			t.Errorf("outcome = %+v, want 4 submitted of 4", outcome)
		}
		for i, record := range store.created {
			want := fmt.Sprintf("Item %d", i+1)
			if record.InternalItemName != want {
				t.Errorf("position %d stored %q, want %q", i, record.InternalItemName, want)
			}
		}
	})

	t.Run("a failed row is recorded and later rows still go out", func(t *testing.T) {
		store := &fakeItemStore{failCalls: map[int]bool{2: true}}
		submitter := NewSubmitter(store, &fakeBOMStore{}, zap.NewNop(), nil)

		outcome, err := submitter.SubmitItems(context.Background(), itemRows(4))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.SubmittedCount != 3 {
			t.Errorf("SubmittedCount = %d, want 3", outcome.SubmittedCount)
		}
		if len(outcome.Failures) != 1 {
			t.Fatalf("Failures = %v, want one entry", outcome.Failures)
		}
		if _, ok := outcome.Failures[2]; !ok {
			t.Errorf("Failures keyed by %v, want source row 2", outcome.Failures)
		}
		if store.calls != 4 {
			t.Errorf("store saw %d calls, want 4", store.calls)
		}
	})

	t.Run("cancellation stops before the next submission", func(t *testing.T) {
		store := &fakeItemStore{}
		submitter := NewSubmitter(store, &fakeBOMStore{}, zap.NewNop(), nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		outcome, err := submitter.SubmitItems(ctx, itemRows(3))
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("err = %v, want context.Canceled", err)
		}
		if outcome.SubmittedCount != 0 || store.calls != 0 {
			t.Errorf("submitted %d rows after cancellation, want 0", store.calls)
		}
	})
}

func TestSubmitBOMs(t *testing.T) {
	rows := []BOMImportRow{
		bomRow(1, "1", "2", "5"),
		bomRow(2, "2", "1", "3"),
		bomRow(3, "1", "5", "9"),
	}

	t.Run("partial failure keeps the rest of the batch", func(t *testing.T) {
		store := &fakeBOMStore{failCalls: map[int]bool{1: true}}
		submitter := NewSubmitter(&fakeItemStore{}, store, zap.NewNop(), nil)

		outcome, err := submitter.SubmitBOMs(context.Background(), rows)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.SubmittedCount != 2 {
			t.Errorf("SubmittedCount = %d, want 2", outcome.SubmittedCount)
		}
		if reason, ok := outcome.Failures[1]; !ok || reason == "" {
			t.Errorf("Failures = %v, want reason under source row 1", outcome.Failures)
		}
		if store.calls != 3 {
			t.Errorf("store saw %d calls, want 3", store.calls)
		}
	})

	t.Run("records land in row order", func(t *testing.T) {
		store := &fakeBOMStore{}
		submitter := NewSubmitter(&fakeItemStore{}, store, zap.NewNop(), nil)

		if _, err := submitter.SubmitBOMs(context.Background(), rows); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantComponents := []int{2, 1, 5}
		for i, record := range store.created {
			if record.ComponentID != wantComponents[i] {
				t.Errorf("position %d stored component %d, want %d", i, record.ComponentID, wantComponents[i])
			}
		}
	})
}
