package repositories

import (
	"time"

	"warung/internal/models"
)

// OrderRepository defines the interface for order data access.
// Create must persist the order and all of its items as one atomic unit.
// UpdateStatus leaves delivered_at untouched when deliveredAt is nil.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByUserID(userID string) ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status models.OrderStatus, deliveredAt *time.Time) error
	// Deletion of orders is deliberately unsupported; the lifecycle ends at
	// delivered or cancelled.
}
