package services

import (
	"fmt"

	"inventory-sync-backend/db/models"
)

// EntityKind selects which schema and rule set an import run uses.
type EntityKind string

const (
	ItemsKind EntityKind = "items"
	BOMKind   EntityKind = "bom"
)

// IsValidEntityKind reports whether k names a supported import target.
func IsValidEntityKind(k EntityKind) bool {
	return k == ItemsKind || k == BOMKind
}

// RawRow is one spreadsheet row keyed by header name, cells as raw text.
type RawRow map[string]string

// NumberCell carries the result of coercing one spreadsheet cell to a
// number. Coercion never fails; a non-numeric cell is marked Valid=false and
// left for validation to report.
type NumberCell struct {
	Raw   string
	Value float64
	Valid bool // Raw parsed as a number
	Set   bool // cell was present and non-empty
}

// Int truncates the cell value. Only meaningful when Set and Valid.
func (n NumberCell) Int() int {
	return int(n.Value)
}

// ItemImportRow is a normalized item row awaiting validation.
type ItemImportRow struct {
	SourceRow        int // 1-based position in the parsed sheet
	InternalItemName string
	TenantID         NumberCell
	ItemDescription  string
	UoM              string
	Type             string
	MaxBuffer        NumberCell
	MinBuffer        NumberCell
	CustomerItemName string
	IsDeleted        bool
	CreatedBy        string
	LastUpdatedBy    string
	CreatedAt        string
	UpdatedAt        string

	DrawingRevisionNumber   NumberCell
	DrawingRevisionDate     string
	AvgWeightNeeded         bool
	ScrapType               string
	ShelfFloorAlternateName string

	Source RawRow
}

// Record converts a validated row into the remote store's item document.
func (r ItemImportRow) Record() models.ItemRecord {
	return models.ItemRecord{
		InternalItemName: r.InternalItemName,
		TenantID:         r.TenantID.Int(),
		ItemDescription:  r.ItemDescription,
		UoM:              models.ItemUoM(r.UoM),
		Type:             models.ItemType(r.Type),
		MaxBuffer:        r.MaxBuffer.Int(),
		MinBuffer:        r.MinBuffer.Int(),
		CustomerItemName: r.CustomerItemName,
		IsDeleted:        r.IsDeleted,
		CreatedBy:        r.CreatedBy,
		LastUpdatedBy:    r.LastUpdatedBy,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
		AdditionalAttributes: models.AdditionalAttributes{
			DrawingRevisionNumber:   r.DrawingRevisionNumber.Int(),
			DrawingRevisionDate:     r.DrawingRevisionDate,
			AvgWeightNeeded:         r.AvgWeightNeeded,
			ScrapType:               r.ScrapType,
			ShelfFloorAlternateName: r.ShelfFloorAlternateName,
		},
	}
}

// BOMImportRow is a normalized BOM row awaiting validation.
type BOMImportRow struct {
	SourceRow     int // 1-based position in the parsed sheet
	ItemID        NumberCell
	ComponentID   NumberCell
	Quantity      NumberCell
	CreatedBy     string
	LastUpdatedBy string

	Source RawRow
}

// Record converts a validated row into the remote store's BOM document.
func (r BOMImportRow) Record() models.BOMRecord {
	return models.BOMRecord{
		ItemID:        r.ItemID.Int(),
		ComponentID:   r.ComponentID.Int(),
		Quantity:      r.Quantity.Int(),
		CreatedBy:     r.CreatedBy,
		LastUpdatedBy: r.LastUpdatedBy,
	}
}

// RowError collects every violated rule for one source row. Rows keep their
// 1-based position from the parsed sheet regardless of later filtering.
type RowError struct {
	Row    int      `json:"row"`
	Errors []string `json:"errors"`
}

// ImportOutcome aggregates the submission phase of a run. Failures are keyed
// by the source row index of the failed submission.
type ImportOutcome struct {
	ValidatedCount int            `json:"validated_count"`
	SubmittedCount int            `json:"submitted_count"`
	Failures       map[int]string `json:"failures"`
}

// ValidationConfig toggles rules whose enforcement is deployment-specific.
type ValidationConfig struct {
	// RequireItemExists rejects BOM rows whose item_id is absent from the
	// reference item collection.
	RequireItemExists bool
}

// Pipeline stages, used to tag fatal errors with where they occurred.
const (
	StageParse          = "parse"
	StageReferenceFetch = "reference-fetch"
)

// StageError is a fatal pipeline failure. The stage names where the run
// stopped; no partial results accompany it.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("import failed at %s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
