package handlers

import (
	"log"
	"warung/internal/middleware"
	"warung/internal/models"
	"warung/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles the staff console endpoints: the full order list,
// cross-user status updates, the customer listing and menu CRUD.
type AdminHandler struct {
	orderService *services.OrderService
	authService  *services.AuthService
	foodService  *services.FoodService
	validate     *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(orderService *services.OrderService, authService *services.AuthService, foodService *services.FoodService) *AdminHandler {
	return &AdminHandler{
		orderService: orderService,
		authService:  authService,
		foodService:  foodService,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the admin routes. The router passed in must
// already be gated by AuthRequired and AdminRequired.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/orders", h.HandleListAllOrders)
	router.Patch("/orders/:id/status", h.HandleUpdateOrderStatus)
	router.Get("/customers", h.HandleListCustomers)

	foodRoutes := router.Group("/foods")
	foodRoutes.Get("/", h.HandleGetAllFoodItems)
	foodRoutes.Post("/", h.HandleCreateFoodItem)
	foodRoutes.Put("/:id", h.HandleUpdateFoodItem)
	foodRoutes.Delete("/:id", h.HandleDeleteFoodItem)
}

// HandleListAllOrders retrieves every order with customer contact fields.
func (h *AdminHandler) HandleListAllOrders(c *fiber.Ctx) error {
	identity := middleware.IdentityFromCtx(c)

	orders, err := h.orderService.ListAllOrders(identity)
	if err != nil {
		log.Printf("Error listing all orders: %v", err)
		return respondServiceError(c, err)
	}
	return c.JSON(orders)
}

// HandleUpdateOrderStatus moves any order along its lifecycle on behalf of
// staff, regardless of owner.
func (h *AdminHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
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

	if err := h.orderService.UpdateOrderStatus(identity, orderID, req.Status); err != nil {
		log.Printf("Error updating status of order %s: %v", orderID, err)
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleListCustomers retrieves the customer listing with order aggregates.
func (h *AdminHandler) HandleListCustomers(c *fiber.Ctx) error {
	identity := middleware.IdentityFromCtx(c)

	customers, err := h.authService.ListCustomers(identity)
	if err != nil {
		log.Printf("Error listing customers: %v", err)
		return respondServiceError(c, err)
	}
	return c.JSON(customers)
}

// HandleGetAllFoodItems retrieves every menu item, available or not.
func (h *AdminHandler) HandleGetAllFoodItems(c *fiber.Ctx) error {
	items, err := h.foodService.GetAllFoodItems()
	if err != nil {
		log.Printf("Error getting all food items: %v", err)
		return respondServiceError(c, err)
	}
	return c.JSON(items)
}

// HandleCreateFoodItem creates a new menu item.
func (h *AdminHandler) HandleCreateFoodItem(c *fiber.Ctx) error {
	var item models.FoodItem
	if err := c.BodyParser(&item); err != nil {
		log.Printf("Error parsing food item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(item); err != nil {
		return respondValidationError(c, err)
	}

	if err := h.foodService.CreateFoodItem(&item); err != nil {
		log.Printf("Error creating food item: %v", err)
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleUpdateFoodItem updates an existing menu item.
func (h *AdminHandler) HandleUpdateFoodItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	var item models.FoodItem
	if err := c.BodyParser(&item); err != nil {
		log.Printf("Error parsing food item request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	item.ID = itemID

	if err := h.validate.Struct(item); err != nil {
		return respondValidationError(c, err)
	}

	if err := h.foodService.UpdateFoodItem(&item); err != nil {
		log.Printf("Error updating food item %s: %v", itemID, err)
		return respondServiceError(c, err)
	}
	return c.JSON(item)
}

// HandleDeleteFoodItem deletes a menu item by its ID.
func (h *AdminHandler) HandleDeleteFoodItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	if err := h.foodService.DeleteFoodItem(itemID); err != nil {
		log.Printf("Error deleting food item %s: %v", itemID, err)
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Food item deleted successfully",
	})
}
