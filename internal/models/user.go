package models

import "gorm.io/gorm"

// Role distinguishes regular customers from staff with elevated access.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// User represents a registered customer or staff member.
type User struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Email       string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password    string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	PhoneNumber string `json:"phone_number" gorm:"type:varchar(20)" validate:"omitempty,max=20"`
	Address     string `json:"address" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	Role        Role   `json:"role" gorm:"type:varchar(20);default:customer"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Identity is the resolved caller passed into every order operation.
// It carries only what authorization decisions need: who and which role.
type Identity struct {
	UserID string
	Role   Role
}

// IsAdmin reports whether the identity may act on orders it does not own.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
