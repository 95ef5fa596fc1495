package models

// ItemUoM is the unit of measure for an item. The remote store only accepts
// the lower-case forms.
type ItemUoM string

const (
	KgsUoM ItemUoM = "kgs"
	NosUoM ItemUoM = "nos"
)

// ItemType classifies an item within the catalog.
type ItemType string

const (
	SellItemType      ItemType = "sell"
	PurchaseItemType  ItemType = "purchase"
	ComponentItemType ItemType = "component"
)

// AdditionalAttributes is the nested attribute block of an item record.
// ScrapType is mandatory when the parent item is sell-type.
type AdditionalAttributes struct {
	DrawingRevisionNumber   int    `json:"drawing_revision_number"`
	DrawingRevisionDate     string `json:"drawing_revision_date"`
	AvgWeightNeeded         bool   `json:"avg_weight_needed"`
	ScrapType               string `json:"scrap_type"`
	ShelfFloorAlternateName string `json:"shelf_floor_alternate_name"`
}

// ItemRecord mirrors the item document of the remote store. IDs are assigned
// remotely; this service never generates them.
type ItemRecord struct {
	ID                   int                  `json:"id,omitempty"`
	InternalItemName     string               `json:"internal_item_name"`
	TenantID             int                  `json:"tenant_id"`
	ItemDescription      string               `json:"item_description"`
	UoM                  ItemUoM              `json:"uom"`
	Type                 ItemType             `json:"type"`
	MaxBuffer            int                  `json:"max_buffer"`
	MinBuffer            int                  `json:"min_buffer"`
	CustomerItemName     string               `json:"customer_item_name"`
	IsDeleted            bool                 `json:"is_deleted"`
	CreatedBy            string               `json:"created_by"`
	LastUpdatedBy        string               `json:"last_updated_by"`
	CreatedAt            string               `json:"createdAt,omitempty"`
	UpdatedAt            string               `json:"updatedAt,omitempty"`
	AdditionalAttributes AdditionalAttributes `json:"additional_attributes"`
}

// IsValidItemType reports whether t is one of the accepted item types.
func IsValidItemType(t ItemType) bool {
	switch t {
	case SellItemType, PurchaseItemType, ComponentItemType:
		return true
	default:
		return false
	}
}

// IsValidUoM reports whether u is one of the accepted units of measure.
func IsValidUoM(u ItemUoM) bool {
	switch u {
	case KgsUoM, NosUoM:
		return true
	default:
		return false
	}
}
