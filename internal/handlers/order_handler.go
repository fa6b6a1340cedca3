package handlers

import (
	"log"
	"warung/internal/middleware"
	"warung/internal/models"
	"warung/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for the customer order endpoints.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app. All of them
// require an authenticated identity.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleListOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Patch("/:id/status", h.HandleUpdateOrderStatus)
}

// HandleListOrders retrieves the caller's own orders, newest first.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	identity := middleware.IdentityFromCtx(c)

	orders, err := h.service.ListOrders(identity)
	if err != nil {
		log.Printf("Error listing orders for user %s: %v", identity.UserID, err)
		return respondServiceError(c, err)
	}

	responses := make([]models.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, models.NewOrderResponse(&orders[i]))
	}
	return c.JSON(responses)
}

// HandleGetOrderByID retrieves a single order owned by the caller. Foreign
// orders come back as not-found.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	identity := middleware.IdentityFromCtx(c)
	orderID := c.Params("id")

	order, err := h.service.GetOrder(identity, orderID)
	if err != nil {
		log.Printf("Error getting order %s for user %s: %v", orderID, identity.UserID, err)
		return respondServiceError(c, err)
	}
	return c.JSON(models.NewOrderResponse(order))
}

// HandleCreateOrder converts the submitted cart into a persisted order.
// Prices are resolved server-side; the request carries none.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	identity := middleware.IdentityFromCtx(c)

	var req models.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	createdOrder, err := h.service.CreateOrder(identity, req)
	if err != nil {
		log.Printf("Error creating order for user %s: %v", identity.UserID, err)
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.NewOrderResponse(createdOrder))
}

// HandleUpdateOrderStatus moves one of the caller's orders along its
// lifecycle (for customers, typically a cancellation).
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	identity := middleware.IdentityFromCtx(c)
	orderID := c.Params("id")

	var req models.UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing status update request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return respondValidationError(c, err)
	}

	if err := h.service.UpdateOrderStatus(identity, orderID, req.Status); err != nil {
		log.Printf("Error updating status of order %s: %v", orderID, err)
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
