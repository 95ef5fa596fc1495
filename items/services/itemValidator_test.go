package services

import (
	"testing"

	"inventory-sync-backend/db/models"
)

func validItem() models.ItemRecord {
	return models.ItemRecord{
		InternalItemName: "Steel Rod",
		TenantID:         123,
		Type:             models.ComponentItemType,
		UoM:              models.KgsUoM,
		MaxBuffer:        20,
		MinBuffer:        10,
	}
}

func TestValidateItemPayload(t *testing.T) {
	t.Run("accepts a well-formed payload", func(t *testing.T) {
		item := validItem()
		if msg := ValidateItemPayload(&item); msg != "" {
			t.Errorf("got %q, want no message", msg)
		}
	})

	tests := []struct {
		name   string
		mutate func(*models.ItemRecord)
		want   string
	}{
		{
			name:   "missing name",
			mutate: func(i *models.ItemRecord) { i.InternalItemName = "" },
			want:   "Internal item name is required",
		},
		{
			name:   "missing tenant",
			mutate: func(i *models.ItemRecord) { i.TenantID = 0 },
			want:   "Tenant ID must be a positive integer",
		},
		{
			name:   "bad type",
			mutate: func(i *models.ItemRecord) { i.Type = "resale" },
			want:   "Invalid item type, must be sell, purchase or component",
		},
		{
			name:   "bad uom",
			mutate: func(i *models.ItemRecord) { i.UoM = "litres" },
			want:   "Invalid UoM, must be kgs or nos",
		},
		{
			name:   "negative buffer",
			mutate: func(i *models.ItemRecord) { i.MinBuffer = -1 },
			want:   "Buffer values must be non-negative",
		},
		{
			name: "buffer inversion",
			mutate: func(i *models.ItemRecord) {
				i.MaxBuffer = 5
				i.MinBuffer = 9
			},
			want: "max_buffer must be greater than or equal to min_buffer",
		},
		{
			name:   "sell without scrap type",
			mutate: func(i *models.ItemRecord) { i.Type = models.SellItemType },
			want:   "scrap_type is required for sell items",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			item := validItem()
			tc.mutate(&item)
			if msg := ValidateItemPayload(&item); msg != tc.want {
				t.Errorf("got %q, want %q", msg, tc.want)
			}
		})
	}

	t.Run("sell item with scrap type passes", func(t *testing.T) {
		item := validItem()
		item.Type = models.SellItemType
		item.AdditionalAttributes.ScrapType = "metal"
		if msg := ValidateItemPayload(&item); msg != "" {
			t.Errorf("got %q, want no message", msg)
		}
	})
}
