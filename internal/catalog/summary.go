package catalog

import (
	"github.com/shopspring/decimal"

	"storefront/internal/models"
)

// Summary is the admin dashboard overview of the catalog.
type Summary struct {
	Products       int    `json:"products"`
	InStock        int    `json:"inStock"`
	OutOfStock     int    `json:"outOfStock"`
	OnSale         int    `json:"onSale"`
	Units          int    `json:"units"`
	InventoryValue string `json:"inventoryValue"`
	Categories     int    `json:"categories"`
}

// Summarize counts the catalog. InventoryValue is sum(price * quantity) at list price.
func Summarize(products []models.Product) Summary {
	value := decimal.Zero
	s := Summary{Products: len(products), Categories: len(Categories(products)) - 1}
	for _, p := range products {
		if p.IsInStock {
			s.InStock++
		} else {
			s.OutOfStock++
		}
		if p.OnSale && p.DiscountPercentage > 0 {
			s.OnSale++
		}
		s.Units += p.QuantityInStock
		value = value.Add(money(p.Price).Mul(decimal.NewFromInt(int64(p.QuantityInStock))))
	}
	s.InventoryValue = value.StringFixed(2)
	return s
}
