package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FoodItem represents a sellable item on the menu.
// The order core only reads it; CRUD belongs to the catalog endpoints.
type FoodItem struct {
	ID                 string           `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name               string           `json:"name" gorm:"type:varchar(200)" validate:"required,min=2,max=200"`
	Description        string           `json:"description" gorm:"type:varchar(1000)" validate:"omitempty,max=1000"`
	Price              decimal.Decimal  `json:"price" gorm:"type:decimal(10,2)" validate:"required"`
	ImageURL           string           `json:"image_url" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	Category           string           `json:"category" gorm:"type:varchar(100)" validate:"required,max=100"`
	IsAvailable        bool             `json:"is_available" gorm:"default:true"`
	IsDeal             bool             `json:"is_deal" gorm:"default:false"`
	DiscountPercentage *decimal.Decimal `json:"discount_percentage,omitempty" gorm:"type:decimal(5,2)"`
	gorm.Model                          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
