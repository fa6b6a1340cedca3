package repositories

import (
	"warung/internal/models"
)

// FoodRepository defines the interface for menu item data access.
// The order core only uses GetByID; the rest serves the catalog endpoints.
type FoodRepository interface {
	GetAll() ([]models.FoodItem, error)
	GetAvailable() ([]models.FoodItem, error)
	GetByID(id string) (*models.FoodItem, error)
	GetByCategory(category string) ([]models.FoodItem, error)
	GetDeals() ([]models.FoodItem, error)
	Create(item *models.FoodItem) error
	Update(item *models.FoodItem) error
	Delete(id string) error
}
