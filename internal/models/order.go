package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the closed set of order lifecycle labels. Orders move
// through the linear chain pending -> confirmed -> preparing -> delivering
// -> delivered; cancelled is reachable from any non-terminal state.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusPreparing  OrderStatus = "preparing"
	StatusDelivering OrderStatus = "delivering"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// nextStatus maps each state to its single forward successor.
var nextStatus = map[OrderStatus]OrderStatus{
	StatusPending:    StatusConfirmed,
	StatusConfirmed:  StatusPreparing,
	StatusPreparing:  StatusDelivering,
	StatusDelivering: StatusDelivered,
}

// ParseOrderStatus maps a label to its OrderStatus, rejecting anything
// outside the fixed vocabulary.
func ParseOrderStatus(label string) (OrderStatus, error) {
	switch s := OrderStatus(label); s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusDelivering, StatusDelivered, StatusCancelled:
		return s, nil
	default:
		return "", ErrInvalidStatus
	}
}

// IsTerminal reports whether no further transition is allowed from s.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Repeating the current status is permitted as a no-op; skipping forward
// states is not.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	if s.IsTerminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	return nextStatus[s] == next
}

// PaymentMethods is the fixed vocabulary of payment labels. The label is
// stored verbatim with the order; no payment is actually processed.
var PaymentMethods = []string{"cod", "bkash", "nagad", "rocket", "advance"}

// OrderItem is one priced line within an order. UnitPrice and ItemName are
// snapshots captured at order time; later catalog edits never touch them.
type OrderItem struct {
	ID         string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID    string          `json:"order_id" gorm:"index;type:varchar(36)"`
	FoodItemID string          `json:"food_item_id" gorm:"type:varchar(36)"`
	ItemName   string          `json:"item_name" gorm:"type:varchar(200)"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2)"`
	TotalPrice decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2)"`
}

// Order represents a persisted, priced customer order. Only Status and
// DeliveredAt may change after creation.
type Order struct {
	ID              string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string          `json:"user_id" gorm:"index;type:varchar(36)"`
	TotalAmount     decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2)"`
	Status          OrderStatus     `json:"status" gorm:"type:varchar(20)"`
	DeliveryAddress string          `json:"delivery_address" gorm:"type:varchar(500)"`
	PhoneNumber     string          `json:"phone_number" gorm:"type:varchar(20)"`
	Notes           string          `json:"notes,omitempty" gorm:"type:varchar(500)"`
	PaymentMethod   string          `json:"payment_method" gorm:"type:varchar(50)"`
	OrderDate       time.Time       `json:"order_date"`
	DeliveredAt     *time.Time      `json:"delivered_at,omitempty"`
	Items           []OrderItem     `json:"items" gorm:"foreignKey:OrderID"`
}
