package repositories

import (
	"fmt"
	"warung/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMFoodRepository is a GORM implementation of FoodRepository.
type GORMFoodRepository struct {
	db *gorm.DB
}

// NewGORMFoodRepository creates a new instance of GORMFoodRepository.
func NewGORMFoodRepository(db *gorm.DB) *GORMFoodRepository {
	return &GORMFoodRepository{
		db: db,
	}
}

// GetAll retrieves every menu item, available or not.
func (r *GORMFoodRepository) GetAll() ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := r.db.Order("category, name").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get all food items: %w", err)
	}
	return items, nil
}

// GetAvailable retrieves the items currently offered to customers.
func (r *GORMFoodRepository) GetAvailable() ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := r.db.Where("is_available = ?", true).Order("category, name").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get available food items: %w", err)
	}
	return items, nil
}

// GetByID retrieves a single menu item by its ID.
func (r *GORMFoodRepository) GetByID(id string) (*models.FoodItem, error) {
	var item models.FoodItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: %s", models.ErrFoodItemNotFound, id)
		}
		return nil, fmt.Errorf("failed to get food item by ID %s: %w", id, err)
	}
	return &item, nil
}

// GetByCategory retrieves the available items within one category.
func (r *GORMFoodRepository) GetByCategory(category string) ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := r.db.Where("LOWER(category) = LOWER(?) AND is_available = ?", category, true).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get food items for category %s: %w", category, err)
	}
	return items, nil
}

// GetDeals retrieves the available items flagged as deals.
func (r *GORMFoodRepository) GetDeals() ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := r.db.Where("is_deal = ? AND is_available = ?", true, true).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get deals: %w", err)
	}
	return items, nil
}

// Create creates a new menu item in the database.
func (r *GORMFoodRepository) Create(item *models.FoodItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create food item: %w", err)
	}
	return nil
}

// Update updates an existing menu item in the database.
func (r *GORMFoodRepository) Update(item *models.FoodItem) error {
	res := r.db.Save(item) // Save will update all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update food item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// GORM's Save doesn't return ErrRecordNotFound for an update that
		// matched nothing, so we check RowsAffected.
		return fmt.Errorf("%w: %s", models.ErrFoodItemNotFound, item.ID)
	}
	return nil
}

// Delete deletes a menu item by its ID from the database.
func (r *GORMFoodRepository) Delete(id string) error {
	res := r.db.Delete(&models.FoodItem{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete food item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", models.ErrFoodItemNotFound, id)
	}
	return nil
}
