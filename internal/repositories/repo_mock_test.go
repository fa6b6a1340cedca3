package repositories

import (
	"testing"
	"time"

	"warung/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The in-memory repositories must stay drop-in replacements for the GORM ones.
var (
	_ FoodRepository  = (*MockFoodRepository)(nil)
	_ OrderRepository = (*MockOrderRepository)(nil)
)

func TestMockFoodRepository(t *testing.T) {
	repo := NewMockFoodRepository()

	burger := models.FoodItem{Name: "Beef Burger", Price: decimal.NewFromInt(350), Category: "burgers", IsAvailable: true}
	fries := models.FoodItem{Name: "French Fries", Price: decimal.NewFromInt(120), Category: "sides", IsAvailable: true}
	pizza := models.FoodItem{Name: "Margherita Pizza", Price: decimal.NewFromInt(550), Category: "pizza", IsAvailable: true, IsDeal: true}
	soldOut := models.FoodItem{Name: "Seasonal Special", Price: decimal.NewFromInt(990), Category: "specials", IsAvailable: false}

	for _, item := range []*models.FoodItem{&burger, &fries, &pizza, &soldOut} {
		require.NoError(t, repo.Create(item))
		assert.NotEmpty(t, item.ID)
	}

	// GetAll returns everything sorted by category then name.
	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "burgers", all[0].Category)
	assert.Equal(t, "specials", all[3].Category)

	// GetAvailable excludes the sold-out item.
	available, err := repo.GetAvailable()
	require.NoError(t, err)
	assert.Len(t, available, 3)
	for _, item := range available {
		assert.True(t, item.IsAvailable)
	}

	// Category lookup is case-insensitive and only returns available items.
	burgers, err := repo.GetByCategory("Burgers")
	require.NoError(t, err)
	require.Len(t, burgers, 1)
	assert.Equal(t, burger.ID, burgers[0].ID)

	deals, err := repo.GetDeals()
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, pizza.ID, deals[0].ID)

	// Lookups by ID.
	found, err := repo.GetByID(burger.ID)
	require.NoError(t, err)
	assert.Equal(t, burger.Name, found.Name)

	_, err = repo.GetByID("no-such-id")
	assert.ErrorIs(t, err, models.ErrFoodItemNotFound)

	// Update replaces the stored item.
	burger.Price = decimal.NewFromInt(420)
	require.NoError(t, repo.Update(&burger))
	found, err = repo.GetByID(burger.ID)
	require.NoError(t, err)
	assert.True(t, found.Price.Equal(decimal.NewFromInt(420)))

	assert.ErrorIs(t, repo.Update(&models.FoodItem{ID: "no-such-id", Name: "Ghost"}), models.ErrFoodItemNotFound)

	// Delete removes the item for good.
	require.NoError(t, repo.Delete(soldOut.ID))
	_, err = repo.GetByID(soldOut.ID)
	assert.ErrorIs(t, err, models.ErrFoodItemNotFound)
	assert.ErrorIs(t, repo.Delete(soldOut.ID), models.ErrFoodItemNotFound)
}

func TestMockOrderRepository(t *testing.T) {
	repo := NewMockOrderRepository()

	base := time.Now().UTC()
	first := models.Order{
		UserID:      "user-a",
		Status:      models.StatusPending,
		TotalAmount: decimal.NewFromInt(820),
		OrderDate:   base,
		Items: []models.OrderItem{
			{FoodItemID: "food-burger", ItemName: "Beef Burger", Quantity: 2, UnitPrice: decimal.NewFromInt(350), TotalPrice: decimal.NewFromInt(700)},
			{FoodItemID: "food-fries", ItemName: "French Fries", Quantity: 1, UnitPrice: decimal.NewFromInt(120), TotalPrice: decimal.NewFromInt(120)},
		},
	}
	second := models.Order{UserID: "user-a", Status: models.StatusPending, OrderDate: base.Add(time.Minute)}
	foreign := models.Order{UserID: "user-b", Status: models.StatusPending, OrderDate: base.Add(2 * time.Minute)}

	for _, order := range []*models.Order{&first, &second, &foreign} {
		require.NoError(t, repo.Create(order))
		assert.NotEmpty(t, order.ID)
	}

	// Create assigned item IDs and linked every line to its order.
	for _, item := range first.Items {
		assert.NotEmpty(t, item.ID)
		assert.Equal(t, first.ID, item.OrderID)
	}

	// GetAll is newest first across all users.
	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, foreign.ID, all[0].ID)
	assert.Equal(t, first.ID, all[2].ID)

	// GetByUserID filters and keeps the newest-first ordering.
	own, err := repo.GetByUserID("user-a")
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, second.ID, own[0].ID)
	assert.Equal(t, first.ID, own[1].ID)

	_, err = repo.GetByID("no-such-order")
	assert.ErrorIs(t, err, models.ErrOrderNotFound)

	// A status update without a timestamp leaves delivered_at alone.
	require.NoError(t, repo.UpdateStatus(first.ID, models.StatusConfirmed, nil))
	fetched, err := repo.GetByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, fetched.Status)
	assert.Nil(t, fetched.DeliveredAt)

	// Delivering stamps the completion time once; a later nil never clears it.
	stamp := base.Add(30 * time.Minute)
	require.NoError(t, repo.UpdateStatus(first.ID, models.StatusDelivered, &stamp))
	require.NoError(t, repo.UpdateStatus(first.ID, models.StatusDelivered, nil))
	fetched, err = repo.GetByID(first.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.DeliveredAt)
	assert.True(t, stamp.Equal(*fetched.DeliveredAt))

	assert.ErrorIs(t, repo.UpdateStatus("no-such-order", models.StatusConfirmed, nil), models.ErrOrderNotFound)
}
