package controllers

import (
	"inventory-sync-backend/bom/repositories"
)

type BOMController struct {
	BOMRepo repositories.BOMRepository
}
