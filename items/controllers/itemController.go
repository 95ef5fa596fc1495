package controllers

import (
	"inventory-sync-backend/items/repositories"
)

type ItemController struct {
	ItemRepo repositories.ItemRepository
}
