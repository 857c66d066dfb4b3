package catalog

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"storefront/internal/models"
)

type BadgeKind string

const (
	BadgeSale      BadgeKind = "sale"
	BadgeNew       BadgeKind = "new"
	BadgeFeatured  BadgeKind = "featured"
	BadgeExclusive BadgeKind = "exclusive"
)

type Badge struct {
	Kind  BadgeKind `json:"kind"`
	Label string    `json:"label"`
}

const (
	InStockLabel    = "In Stock"
	OutOfStockLabel = "Out of Stock"
)

var hundred = decimal.NewFromInt(100)

// Display holds presentation-only values derived from a product.
type Display struct {
	Product models.Product `json:"product"`

	Price         decimal.Decimal `json:"-"`
	OriginalPrice decimal.Decimal `json:"-"`
	Savings       decimal.Decimal `json:"-"`

	PriceText         string `json:"price"`
	OriginalPriceText string `json:"originalPrice,omitempty"`
	SavingsText       string `json:"savings,omitempty"`
	RatingText        string `json:"rating"`

	HasDiscount bool    `json:"hasDiscount"`
	InStock     bool    `json:"inStock"`
	StockLabel  string  `json:"stockLabel"`
	Badges      []Badge `json:"badges"`
	Navigable   bool    `json:"navigable"`
	URL         string  `json:"url,omitempty"`
}

// Present derives the display values for p. p is passed by value and never modified.
func Present(p models.Product) Display {
	price := money(p.Price)
	original, discounted := OriginalPrice(p)

	d := Display{
		Product:       p,
		Price:         price,
		OriginalPrice: original,
		Savings:       decimal.Zero,
		PriceText:     price.StringFixed(2),
		RatingText:    strconv.FormatFloat(p.Rating, 'f', 1, 64),
		HasDiscount:   discounted,
		InStock:       p.IsInStock,
		StockLabel:    StockLabel(p),
		Badges:        Badges(p),
		Navigable:     p.Navigable(),
	}
	if discounted {
		d.Savings = original.Sub(price)
		d.OriginalPriceText = original.StringFixed(2)
		d.SavingsText = d.Savings.StringFixed(2)
	}
	if d.Navigable {
		d.URL = ProductPath(p.ID)
	}
	return d
}

// PresentAll maps Present over products.
func PresentAll(products []models.Product) []Display {
	out := make([]Display, 0, len(products))
	for _, p := range products {
		out = append(out, Present(p))
	}
	return out
}

// OriginalPrice returns the pre-discount price, price / (1 - d/100), rounded
// to cents. It reports false, returning the current price, when the product
// is not on sale or the discount is outside (0, 100).
func OriginalPrice(p models.Product) (decimal.Decimal, bool) {
	price := money(p.Price)
	if !p.OnSale || p.DiscountPercentage <= 0 || p.DiscountPercentage >= 100 {
		return price, false
	}
	factor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(p.DiscountPercentage).Div(hundred))
	return price.Div(factor).Round(2), true
}

// Badges returns the active badges in rendering priority: sale, new, featured, exclusive.
func Badges(p models.Product) []Badge {
	badges := make([]Badge, 0, 4)
	if p.OnSale && p.DiscountPercentage > 0 {
		pct := strconv.FormatFloat(p.DiscountPercentage, 'f', -1, 64)
		badges = append(badges, Badge{Kind: BadgeSale, Label: pct + "% OFF"})
	}
	if p.IsNewArrival {
		badges = append(badges, Badge{Kind: BadgeNew, Label: "NEW"})
	}
	if p.IsFeatured {
		badges = append(badges, Badge{Kind: BadgeFeatured, Label: "FEATURED"})
	}
	if p.IsExclusive {
		badges = append(badges, Badge{Kind: BadgeExclusive, Label: "EXCLUSIVE"})
	}
	return badges
}

func StockLabel(p models.Product) string {
	if p.IsInStock {
		return InStockLabel
	}
	return OutOfStockLabel
}

// ProductPath is the detail page path for id.
func ProductPath(id string) string {
	return "/product/" + url.PathEscape(id)
}

func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

const inquiryDescriptionLimit = 150

// InquiryMessage is the pre-filled text of a product inquiry.
func InquiryMessage(p models.Product, productURL string) string {
	desc := []rune(p.Description)
	if len(desc) > inquiryDescriptionLimit {
		desc = desc[:inquiryDescriptionLimit]
	}

	var b strings.Builder
	b.WriteString("*Product Inquiry*\n\n")
	fmt.Fprintf(&b, "*Product Name:* %s\n", p.Name)
	fmt.Fprintf(&b, "*Price:* $%s\n", money(p.Price).StringFixed(2))
	fmt.Fprintf(&b, "*Category:* %s\n", p.Category)
	fmt.Fprintf(&b, "*Rating:* %s/5\n\n", strconv.FormatFloat(p.Rating, 'f', -1, 64))
	fmt.Fprintf(&b, "*Description:* %s...\n\n", string(desc))
	fmt.Fprintf(&b, "*Product Link:* %s\n\n", productURL)
	b.WriteString("Hello! I'm interested in this product. Please provide more details.")
	return b.String()
}

// InquiryLink builds the wa.me deep link that hands the cart intent to the
// store's messaging account. baseURL is the public origin of the storefront.
func InquiryLink(p models.Product, phone, baseURL string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	productURL := strings.TrimRight(baseURL, "/") + ProductPath(p.ID)
	q := url.Values{"text": {InquiryMessage(p, productURL)}}
	return "https://wa.me/" + digits + "?" + q.Encode()
}
