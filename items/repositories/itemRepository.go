package repositories

import (
	"context"
	"fmt"

	"inventory-sync-backend/db/models"
	internal_services "inventory-sync-backend/internal/services"
)

// ItemRepository is the gateway to the remote Item store. The store owns the
// records; this service only reads and writes through its REST surface.
type ItemRepository interface {
	GetItems(ctx context.Context) ([]models.ItemRecord, error)
	CreateItem(ctx context.Context, item models.ItemRecord) (*models.ItemRecord, error)
	UpdateItem(ctx context.Context, id int, item models.ItemRecord) (*models.ItemRecord, error)
	DeleteItem(ctx context.Context, id int) error
}

type remoteItemRepository struct {
	client *internal_services.RemoteStoreClient
}

func NewItemRepository(client *internal_services.RemoteStoreClient) ItemRepository {
	return &remoteItemRepository{client: client}
}

func (r *remoteItemRepository) GetItems(ctx context.Context) ([]models.ItemRecord, error) {
	var items []models.ItemRecord
	if err := r.client.GetJSON(ctx, "/items", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *remoteItemRepository) CreateItem(ctx context.Context, item models.ItemRecord) (*models.ItemRecord, error) {
	var created models.ItemRecord
	if err := r.client.PostJSON(ctx, "/items", item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *remoteItemRepository) UpdateItem(ctx context.Context, id int, item models.ItemRecord) (*models.ItemRecord, error) {
	var updated models.ItemRecord
	if err := r.client.PutJSON(ctx, fmt.Sprintf("/items/%d", id), item, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *remoteItemRepository) DeleteItem(ctx context.Context, id int) error {
	return r.client.Delete(ctx, fmt.Sprintf("/items/%d", id))
}
