package services

import (
	"warung/internal/models"
	"warung/internal/repositories"
)

// FoodService handles business logic related to the menu catalog.
type FoodService struct {
	repo repositories.FoodRepository
}

// NewFoodService creates a new FoodService.
func NewFoodService(repo repositories.FoodRepository) *FoodService {
	return &FoodService{
		repo: repo,
	}
}

// GetMenu retrieves the items currently offered to customers.
func (s *FoodService) GetMenu() ([]models.FoodItem, error) {
	return s.repo.GetAvailable()
}

// GetAllFoodItems retrieves every item, including unavailable ones, for the
// staff console.
func (s *FoodService) GetAllFoodItems() ([]models.FoodItem, error) {
	return s.repo.GetAll()
}

// GetFoodItemByID retrieves a single menu item by its ID.
func (s *FoodService) GetFoodItemByID(id string) (*models.FoodItem, error) {
	return s.repo.GetByID(id)
}

// GetFoodItemsByCategory retrieves the available items within one category.
func (s *FoodService) GetFoodItemsByCategory(category string) ([]models.FoodItem, error) {
	return s.repo.GetByCategory(category)
}

// GetDeals retrieves the available items flagged as deals.
func (s *FoodService) GetDeals() ([]models.FoodItem, error) {
	return s.repo.GetDeals()
}

// CreateFoodItem creates a new menu item.
func (s *FoodService) CreateFoodItem(item *models.FoodItem) error {
	return s.repo.Create(item)
}

// UpdateFoodItem updates an existing menu item.
func (s *FoodService) UpdateFoodItem(item *models.FoodItem) error {
	return s.repo.Update(item)
}

// DeleteFoodItem deletes a menu item by its ID.
func (s *FoodService) DeleteFoodItem(id string) error {
	return s.repo.Delete(id)
}
