package repositories

import (
	"inventory-sync-backend/db/models"

	bleveindex "inventory-sync-backend/bleve/services"

	"github.com/blevesearch/bleve/v2"
)

const importErrorIndex = "import_errors"

// importErrorDocument is the searchable projection of an error log row.
type importErrorDocument struct {
	RunID      string `json:"run_id"`
	EntityKind string `json:"entity_kind"`
	RowIndex   int    `json:"row_index"`
	Reason     string `json:"reason"`
	ErrorType  string `json:"error_type"`
	CreatedBy  string `json:"created_by"`
	RawRow     string `json:"raw_row"`
}

type BleveRepository struct {
	indexer *bleveindex.IndexingService
}

type BleveRepositoryInterface interface {
	IndexImportError(row models.ImportErrorLog) error
	IndexImportErrors(rows []models.ImportErrorLog) error
	SearchImportErrors(queryString string, size int) (*bleve.SearchResult, error)
}

// Constructor returning both the struct and the interface
func NewBleveRepository(indexer *bleveindex.IndexingService) (*BleveRepository, BleveRepositoryInterface) {
	repo := &BleveRepository{indexer: indexer}
	return repo, repo
}

func (r *BleveRepository) IndexImportError(row models.ImportErrorLog) error {
	doc := importErrorDocument{
		RunID:      row.RunID.String(),
		EntityKind: row.EntityKind,
		RowIndex:   row.RowIndex,
		Reason:     row.Reason,
		ErrorType:  string(row.ErrorType),
		CreatedBy:  row.CreatedBy,
		RawRow:     string(row.RawRow),
	}
	return r.indexer.IndexDocument(importErrorIndex, row.ID.String(), doc)
}

func (r *BleveRepository) IndexImportErrors(rows []models.ImportErrorLog) error {
	for _, row := range rows {
		if err := r.IndexImportError(row); err != nil {
			return err
		}
	}
	return nil
}

func (r *BleveRepository) SearchImportErrors(queryString string, size int) (*bleve.SearchResult, error) {
	if size <= 0 {
		size = 25
	}
	q := bleve.NewQueryStringQuery(queryString)
	return r.indexer.SearchIndex(importErrorIndex, q, size)
}
