package services

import (
	"warung/internal/models"

	"github.com/shopspring/decimal"
)

// CartEntry is a validated cart line: a catalog snapshot plus the requested
// quantity. The snapshot's price is the only price that ever enters pricing.
type CartEntry struct {
	Item     models.FoodItem
	Quantity int
}

// PriceCart computes each line total and the order total from the snapshot
// prices, using fixed-point decimal arithmetic. Pure function, no side
// effects.
func PriceCart(entries []CartEntry) ([]models.OrderItem, decimal.Decimal) {
	items := make([]models.OrderItem, 0, len(entries))
	total := decimal.Zero
	for _, entry := range entries {
		lineTotal := entry.Item.Price.Mul(decimal.NewFromInt(int64(entry.Quantity)))
		items = append(items, models.OrderItem{
			FoodItemID: entry.Item.ID,
			ItemName:   entry.Item.Name,
			Quantity:   entry.Quantity,
			UnitPrice:  entry.Item.Price,
			TotalPrice: lineTotal,
		})
		total = total.Add(lineTotal)
	}
	return items, total
}
