package services

import (
	"testing"

	"inventory-sync-backend/db/models"
)

func TestValidateBOMPayload(t *testing.T) {
	tests := []struct {
		name string
		bom  models.BOMRecord
		want string
	}{
		{
			name: "well-formed payload",
			bom:  models.BOMRecord{ItemID: 1, ComponentID: 2, Quantity: 5},
			want: "",
		},
		{
			name: "missing item id",
			bom:  models.BOMRecord{ComponentID: 2, Quantity: 5},
			want: "Item ID and Component ID are mandatory",
		},
		{
			name: "missing component id",
			bom:  models.BOMRecord{ItemID: 1, Quantity: 5},
			want: "Item ID and Component ID are mandatory",
		},
		{
			name: "self-referencing pair",
			bom:  models.BOMRecord{ItemID: 3, ComponentID: 3, Quantity: 5},
			want: "Item ID and Component ID must not be the same item",
		},
		{
			name: "quantity below range",
			bom:  models.BOMRecord{ItemID: 1, ComponentID: 2, Quantity: 0},
			want: "Quantity must be between 1 and 100",
		},
		{
			name: "quantity above range",
			bom:  models.BOMRecord{ItemID: 1, ComponentID: 2, Quantity: 101},
			want: "Quantity must be between 1 and 100",
		},
		{
			name: "quantity at the bounds",
			bom:  models.BOMRecord{ItemID: 1, ComponentID: 2, Quantity: 100},
			want: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bom := tc.bom
			if msg := ValidateBOMPayload(&bom); msg != tc.want {
				t.Errorf("got %q, want %q", msg, tc.want)
			}
		})
	}
}
