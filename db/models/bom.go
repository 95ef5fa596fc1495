package models

// BOMRecord mirrors a bill-of-materials document of the remote store: one
// parent item paired with one component item and a required quantity.
type BOMRecord struct {
	ID            int    `json:"id,omitempty"`
	ItemID        int    `json:"item_id"`
	ComponentID   int    `json:"component_id"`
	Quantity      int    `json:"quantity"`
	CreatedBy     string `json:"created_by"`
	LastUpdatedBy string `json:"last_updated_by"`
	CreatedAt     string `json:"createdAt,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
}
