package models

import "strings"

const (
	DefaultCategory = "Uncategorized"
	DefaultSize     = "One Size"
	DefaultName     = "Unnamed Product"

	// Upstream records sometimes carry this literal as their id.
	UndefinedID = "undefined"
	// Prefix for ids assigned to records that arrived without one.
	PlaceholderIDPrefix = "temp-"
)

// Categories offered by the admin product form.
var Categories = []string{"Protein", "Pre Workout", "Weight Gainer", "Creatine", "BCAA", "Fat Burner", "Performance"}

type Product struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Category           string   `json:"category"`
	Price              float64  `json:"price"`
	Cost               *float64 `json:"cost,omitempty"`
	Description        string   `json:"description"`
	ImageURL           string   `json:"imageUrl"`
	QuantityInStock    int      `json:"quantityInStock"`
	Size               string   `json:"size"`
	Rating             float64  `json:"rating"`
	Color              string   `json:"color"`
	OnSale             bool     `json:"onSale"`
	DiscountPercentage float64  `json:"discountPercentage"`
	IsNewArrival       bool     `json:"isNewArrival"`
	IsInStock          bool     `json:"isInStock"`
	IsFeatured         bool     `json:"isFeatured"`
	IsExclusive        bool     `json:"isExclusive"`
}

// ValidID reports whether id can be used as a navigation target.
func ValidID(id string) bool {
	id = strings.TrimSpace(id)
	return id != "" && id != UndefinedID && !strings.HasPrefix(id, PlaceholderIDPrefix)
}

// Navigable reports whether the product can be linked to its detail page.
func (p Product) Navigable() bool {
	return ValidID(p.ID)
}

// ProductInput is the admin form / upstream mutation body (no identifier).
type ProductInput struct {
	Name               string  `form:"name" json:"name" binding:"required"`
	Category           string  `form:"category" json:"category" binding:"required"`
	Price              float64 `form:"price" json:"price" binding:"gte=0"`
	Cost               float64 `form:"cost" json:"cost" binding:"gte=0"`
	Description        string  `form:"description" json:"description"`
	ImageURL           string  `form:"imageUrl" json:"imageUrl" binding:"omitempty,url"`
	QuantityInStock    int     `form:"quantityInStock" json:"quantityInStock" binding:"gte=0"`
	Size               string  `form:"size" json:"size"`
	Rating             float64 `form:"rating" json:"rating" binding:"gte=0,lte=5"`
	Color              string  `form:"color" json:"color"`
	OnSale             bool    `form:"onSale" json:"onSale"`
	DiscountPercentage float64 `form:"discountPercentage" json:"discountPercentage" binding:"gte=0,lte=100"`
	IsNewArrival       bool    `form:"isNewArrival" json:"isNewArrival"`
	IsFeatured         bool    `form:"isFeatured" json:"isFeatured"`
	IsExclusive        bool    `form:"isExclusive" json:"isExclusive"`
	IsInStock          bool    `form:"-" json:"isInStock"`
}

// Prepare trims text fields, applies form defaults and derives IsInStock.
func (in *ProductInput) Prepare() {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Description = strings.TrimSpace(in.Description)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	in.Color = strings.TrimSpace(in.Color)
	in.Size = strings.TrimSpace(in.Size)
	if in.Size == "" {
		in.Size = DefaultSize
	}
	in.IsInStock = in.QuantityInStock > 0
}

// InputFrom pre-fills the edit form from an existing product.
func InputFrom(p Product) ProductInput {
	in := ProductInput{
		Name:               p.Name,
		Category:           p.Category,
		Price:              p.Price,
		Description:        p.Description,
		ImageURL:           p.ImageURL,
		QuantityInStock:    p.QuantityInStock,
		Size:               p.Size,
		Rating:             p.Rating,
		Color:              p.Color,
		OnSale:             p.OnSale,
		DiscountPercentage: p.DiscountPercentage,
		IsNewArrival:       p.IsNewArrival,
		IsFeatured:         p.IsFeatured,
		IsExclusive:        p.IsExclusive,
		IsInStock:          p.IsInStock,
	}
	if p.Cost != nil {
		in.Cost = *p.Cost
	}
	return in
}
