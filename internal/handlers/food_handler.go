package handlers

import (
	"log"
	"warung/internal/services"

	"github.com/gofiber/fiber/v2"
)

// FoodHandler handles the public, read-only menu endpoints. Mutations live
// behind the admin routes.
type FoodHandler struct {
	service *services.FoodService
}

// NewFoodHandler creates a new FoodHandler.
func NewFoodHandler(service *services.FoodService) *FoodHandler {
	return &FoodHandler{
		service: service,
	}
}

// RegisterRoutes registers the menu routes with the Fiber app. The static
// paths must come before the :id parameter route.
func (h *FoodHandler) RegisterRoutes(router fiber.Router) {
	foodRoutes := router.Group("/foods")
	foodRoutes.Get("/", h.HandleGetMenu)
	foodRoutes.Get("/deals", h.HandleGetDeals)
	foodRoutes.Get("/category/:category", h.HandleGetByCategory)
	foodRoutes.Get("/:id", h.HandleGetFoodItemByID)
}

// HandleGetMenu retrieves all currently available menu items.
func (h *FoodHandler) HandleGetMenu(c *fiber.Ctx) error {
	items, err := h.service.GetMenu()
	if err != nil {
		log.Printf("Error getting menu: %v", err)
		return respondServiceError(c, err)
	}
	return c.JSON(items)
}

// HandleGetDeals retrieves the available items flagged as deals.
func (h *FoodHandler) HandleGetDeals(c *fiber.Ctx) error {
	items, err := h.service.GetDeals()
	if err != nil {
		log.Printf("Error getting deals: %v", err)
		return respondServiceError(c, err)
	}
	return c.JSON(items)
}

// HandleGetByCategory retrieves the available items within one category.
func (h *FoodHandler) HandleGetByCategory(c *fiber.Ctx) error {
	category := c.Params("category")
	items, err := h.service.GetFoodItemsByCategory(category)
	if err != nil {
		log.Printf("Error getting foods for category %s: %v", category, err)
		return respondServiceError(c, err)
	}
	return c.JSON(items)
}

// HandleGetFoodItemByID retrieves a single menu item by its ID.
func (h *FoodHandler) HandleGetFoodItemByID(c *fiber.Ctx) error {
	itemID := c.Params("id")
	item, err := h.service.GetFoodItemByID(itemID)
	if err != nil {
		log.Printf("Error getting food item by ID %s: %v", itemID, err)
		return respondServiceError(c, err)
	}
	return c.JSON(item)
}
