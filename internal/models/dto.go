package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one client-proposed (item, quantity) pair. The client never
// supplies a price; pricing is always resolved server-side.
type CartLine struct {
	FoodItemID string `json:"food_item_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required"`
}

// CreateOrderRequest is the request body for order submission.
type CreateOrderRequest struct {
	DeliveryAddress string     `json:"delivery_address" validate:"required,max=500"`
	PhoneNumber     string     `json:"phone_number" validate:"required,max=20"`
	Notes           string     `json:"notes" validate:"omitempty,max=500"`
	PaymentMethod   string     `json:"payment_method" validate:"required,oneof=cod bkash nagad rocket advance"`
	Items           []CartLine `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderStatusRequest is the request body for a status change.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderItemResponse is one resolved line in an order response.
type OrderItemResponse struct {
	ID         string          `json:"id"`
	FoodItemID string          `json:"food_item_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// OrderResponse is the customer-facing shape of a persisted order.
type OrderResponse struct {
	OrderID         string              `json:"order_id"`
	Status          OrderStatus         `json:"status"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	DeliveryAddress string              `json:"delivery_address"`
	PaymentMethod   string              `json:"payment_method"`
	OrderDate       time.Time           `json:"order_date"`
	DeliveredAt     *time.Time          `json:"delivered_at,omitempty"`
	Items           []OrderItemResponse `json:"items"`
}

// NewOrderResponse converts a persisted order into its response shape.
func NewOrderResponse(order *Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ID:         item.ID,
			FoodItemID: item.FoodItemID,
			Name:       item.ItemName,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}
	return OrderResponse{
		OrderID:         order.ID,
		Status:          order.Status,
		TotalAmount:     order.TotalAmount,
		DeliveryAddress: order.DeliveryAddress,
		PaymentMethod:   order.PaymentMethod,
		OrderDate:       order.OrderDate,
		DeliveredAt:     order.DeliveredAt,
		Items:           items,
	}
}

// AdminOrderResponse is the staff-facing order shape, including the
// customer contact fields the console needs.
type AdminOrderResponse struct {
	OrderResponse
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
}

// CustomerSummary is one row of the admin customer listing.
type CustomerSummary struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phone_number"`
	Address     string          `json:"address"`
	CreatedAt   time.Time       `json:"created_at"`
	OrderCount  int64           `json:"order_count"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
}
