package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"warung/internal/models"

	"github.com/google/uuid"
)

// MockFoodRepository is an in-memory implementation of FoodRepository.
type MockFoodRepository struct {
	items map[string]models.FoodItem
	mu    sync.RWMutex
}

// NewMockFoodRepository creates a new instance of MockFoodRepository.
func NewMockFoodRepository() *MockFoodRepository {
	return &MockFoodRepository{
		items: make(map[string]models.FoodItem),
	}
}

// GetAll returns every menu item.
func (r *MockFoodRepository) GetAll() ([]models.FoodItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(models.FoodItem) bool { return true }), nil
}

// GetAvailable returns the items currently offered to customers.
func (r *MockFoodRepository) GetAvailable() ([]models.FoodItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(item models.FoodItem) bool { return item.IsAvailable }), nil
}

// GetByID returns a menu item by its ID.
func (r *MockFoodRepository) GetByID(id string) (*models.FoodItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrFoodItemNotFound, id)
	}
	return &item, nil
}

// GetByCategory returns the available items within one category.
func (r *MockFoodRepository) GetByCategory(category string) ([]models.FoodItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(item models.FoodItem) bool {
		return item.IsAvailable && strings.EqualFold(item.Category, category)
	}), nil
}

// GetDeals returns the available items flagged as deals.
func (r *MockFoodRepository) GetDeals() ([]models.FoodItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(item models.FoodItem) bool { return item.IsAvailable && item.IsDeal }), nil
}

// Create adds a new menu item.
func (r *MockFoodRepository) Create(item *models.FoodItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	r.items[item.ID] = *item
	return nil
}

// Update modifies an existing menu item.
func (r *MockFoodRepository) Update(item *models.FoodItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.items[item.ID]
	if !ok {
		return fmt.Errorf("%w: %s", models.ErrFoodItemNotFound, item.ID)
	}
	r.items[item.ID] = *item
	return nil
}

// Delete removes a menu item by its ID.
func (r *MockFoodRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.items[id]
	if !ok {
		return fmt.Errorf("%w: %s", models.ErrFoodItemNotFound, id)
	}
	delete(r.items, id)
	return nil
}

// collect returns matching items sorted by category then name. Callers must
// hold at least a read lock.
func (r *MockFoodRepository) collect(match func(models.FoodItem) bool) []models.FoodItem {
	items := make([]models.FoodItem, 0, len(r.items))
	for _, item := range r.items {
		if match(item) {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Name < items[j].Name
	})
	return items
}
