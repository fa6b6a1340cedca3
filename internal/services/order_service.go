package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"
	"warung/internal/models"
	"warung/internal/repositories"
	"warung/pkg/rabbitmq"

	"github.com/google/uuid"
)

// OrderService handles the order workflow: cart validation, pricing, atomic
// creation, lifecycle transitions and ownership checks. Every operation
// takes the caller's resolved identity; there is no ambient current user.
type OrderService struct {
	orderRepo repositories.OrderRepository
	foodRepo  repositories.FoodRepository
	userRepo  repositories.UserRepository
	mqClient  *rabbitmq.Client // RabbitMQ client, may be nil
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, foodRepo repositories.FoodRepository, userRepo repositories.UserRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		foodRepo:  foodRepo,
		userRepo:  userRepo,
		mqClient:  mqClient,
	}
}

// validateCart checks every submitted line against the catalog and returns
// the validated (snapshot, quantity) pairs. Any bad line rejects the whole
// cart; partial carts are never accepted.
func (s *OrderService) validateCart(lines []models.CartLine) ([]CartEntry, error) {
	if len(lines) == 0 {
		return nil, models.ErrEmptyCart
	}

	entries := make([]CartEntry, 0, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item %s", models.ErrInvalidQuantity, line.FoodItemID)
		}

		item, err := s.foodRepo.GetByID(line.FoodItemID)
		if err != nil {
			if errors.Is(err, models.ErrFoodItemNotFound) {
				// Unknown and unavailable items are reported identically.
				return nil, fmt.Errorf("%w: %s", models.ErrItemUnavailable, line.FoodItemID)
			}
			return nil, fmt.Errorf("failed to look up food item %s: %w", line.FoodItemID, err)
		}
		if !item.IsAvailable {
			return nil, fmt.Errorf("%w: %s", models.ErrItemUnavailable, line.FoodItemID)
		}

		entries = append(entries, CartEntry{Item: *item, Quantity: line.Quantity})
	}
	return entries, nil
}

// CreateOrder validates and prices the submitted cart, then persists the
// order and all of its lines as one atomic unit owned by the caller.
// Nothing is written when any line is rejected.
func (s *OrderService) CreateOrder(identity models.Identity, req models.CreateOrderRequest) (*models.Order, error) {
	if identity.UserID == "" {
		return nil, models.ErrUnauthenticated
	}

	entries, err := s.validateCart(req.Items)
	if err != nil {
		return nil, err
	}

	items, totalAmount := PriceCart(entries)

	newOrder := &models.Order{
		ID:              uuid.New().String(),
		UserID:          identity.UserID,
		TotalAmount:     totalAmount,
		Status:          models.StatusPending,
		DeliveryAddress: req.DeliveryAddress,
		PhoneNumber:     req.PhoneNumber,
		Notes:           req.Notes,
		PaymentMethod:   req.PaymentMethod,
		OrderDate:       time.Now().UTC(),
		Items:           items,
	}

	if err := s.orderRepo.Create(newOrder); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	s.publishOrderEvent("order.created", map[string]interface{}{
		"order_id": newOrder.ID,
		"user_id":  newOrder.UserID,
		"status":   newOrder.Status,
		"total":    newOrder.TotalAmount,
	})

	return newOrder, nil
}

// ListOrders retrieves the caller's own orders, newest first.
func (s *OrderService) ListOrders(identity models.Identity) ([]models.Order, error) {
	if identity.UserID == "" {
		return nil, models.ErrUnauthenticated
	}
	return s.orderRepo.GetByUserID(identity.UserID)
}

// GetOrder retrieves a single order. A customer asking for someone else's
// order gets not-found, never forbidden, so existence is not leaked.
func (s *OrderService) GetOrder(identity models.Identity, id string) (*models.Order, error) {
	if identity.UserID == "" {
		return nil, models.ErrUnauthenticated
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !identity.IsAdmin() && order.UserID != identity.UserID {
		return nil, fmt.Errorf("%w: %s", models.ErrOrderNotFound, id)
	}
	return order, nil
}

// UpdateOrderStatus moves an order along its lifecycle. Owners may move
// their own orders, admins any order. The transition graph is enforced:
// forward one step at a time, cancel from any non-terminal state, repeats
// are no-ops. Reaching delivered stamps the completion time exactly once.
func (s *OrderService) UpdateOrderStatus(identity models.Identity, id string, label string) error {
	newStatus, err := models.ParseOrderStatus(label)
	if err != nil {
		return fmt.Errorf("%w: %q", models.ErrInvalidStatus, label)
	}

	// GetOrder applies the ownership rules, masking foreign orders.
	order, err := s.GetOrder(identity, id)
	if err != nil {
		return err
	}

	if !order.Status.CanTransitionTo(newStatus) {
		return fmt.Errorf("%w: %s -> %s", models.ErrInvalidTransition, order.Status, newStatus)
	}

	var deliveredAt *time.Time
	if newStatus == models.StatusDelivered && order.DeliveredAt == nil {
		now := time.Now().UTC()
		deliveredAt = &now
	}

	if err := s.orderRepo.UpdateStatus(id, newStatus, deliveredAt); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}

	s.publishOrderEvent("order.status_updated", map[string]interface{}{
		"order_id": id,
		"status":   newStatus,
	})

	return nil
}

// ListAllOrders retrieves every order for the staff console, newest first,
// with the owning customer's contact fields joined in.
func (s *OrderService) ListAllOrders(identity models.Identity) ([]models.AdminOrderResponse, error) {
	if identity.UserID == "" {
		return nil, models.ErrUnauthenticated
	}
	if !identity.IsAdmin() {
		return nil, models.ErrForbidden
	}

	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}

	users := make(map[string]*models.User)
	responses := make([]models.AdminOrderResponse, 0, len(orders))
	for i := range orders {
		order := &orders[i]
		resp := models.AdminOrderResponse{
			OrderResponse: models.NewOrderResponse(order),
			CustomerPhone: order.PhoneNumber,
		}

		user, ok := users[order.UserID]
		if !ok {
			user, err = s.userRepo.GetByID(order.UserID)
			if err != nil {
				// A missing user must not break the whole listing.
				log.Printf("Warning: could not resolve customer %s for order %s: %v", order.UserID, order.ID, err)
				user = nil
			}
			users[order.UserID] = user
		}
		if user != nil {
			resp.CustomerName = user.Name
			resp.CustomerEmail = user.Email
		}

		responses = append(responses, resp)
	}
	return responses, nil
}

// publishOrderEvent publishes an order lifecycle event. Publishing is best
// effort: a broker failure is logged, never surfaced to the caller.
func (s *OrderService) publishOrderEvent(routingKey string, payload map[string]interface{}) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.mqClient.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
		return
	}
	log.Printf("Published %s event", routingKey)
}
