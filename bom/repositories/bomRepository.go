package repositories

import (
	"context"
	"fmt"

	"inventory-sync-backend/db/models"
	internal_services "inventory-sync-backend/internal/services"
)

// BOMRepository is the gateway to the remote BOM store.
type BOMRepository interface {
	GetBOMs(ctx context.Context) ([]models.BOMRecord, error)
	CreateBOM(ctx context.Context, bom models.BOMRecord) (*models.BOMRecord, error)
	UpdateBOM(ctx context.Context, id int, bom models.BOMRecord) (*models.BOMRecord, error)
	DeleteBOM(ctx context.Context, id int) error
}

type remoteBOMRepository struct {
	client *internal_services.RemoteStoreClient
}

func NewBOMRepository(client *internal_services.RemoteStoreClient) BOMRepository {
	return &remoteBOMRepository{client: client}
}

func (r *remoteBOMRepository) GetBOMs(ctx context.Context) ([]models.BOMRecord, error) {
	var boms []models.BOMRecord
	if err := r.client.GetJSON(ctx, "/bom", &boms); err != nil {
		return nil, err
	}
	return boms, nil
}

func (r *remoteBOMRepository) CreateBOM(ctx context.Context, bom models.BOMRecord) (*models.BOMRecord, error) {
	var created models.BOMRecord
	if err := r.client.PostJSON(ctx, "/bom", bom, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *remoteBOMRepository) UpdateBOM(ctx context.Context, id int, bom models.BOMRecord) (*models.BOMRecord, error) {
	var updated models.BOMRecord
	if err := r.client.PutJSON(ctx, fmt.Sprintf("/bom/%d", id), bom, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *remoteBOMRepository) DeleteBOM(ctx context.Context, id int) error {
	return r.client.Delete(ctx, fmt.Sprintf("/bom/%d", id))
}
