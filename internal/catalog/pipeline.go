package catalog

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"unicode"

	"storefront/internal/models"
)

// AllCategories is the category wildcard.
const AllCategories = "all"

type SortOption string

const (
	SortDefault    SortOption = "default"
	SortPriceAsc   SortOption = "price_asc"
	SortPriceDesc  SortOption = "price_desc"
	SortRatingDesc SortOption = "rating_desc"
)

// SortOptions in the order the listing page offers them.
var SortOptions = []SortOption{SortDefault, SortPriceAsc, SortPriceDesc, SortRatingDesc}

// ParseSortOption maps unknown values to SortDefault.
func ParseSortOption(s string) SortOption {
	switch opt := SortOption(strings.ToLower(strings.TrimSpace(s))); opt {
	case SortPriceAsc, SortPriceDesc, SortRatingDesc:
		return opt
	default:
		return SortDefault
	}
}

// Filters is the listing filter state. Both price bounds are inclusive.
type Filters struct {
	Category string  `json:"category"`
	MinPrice float64 `json:"minPrice"`
	MaxPrice float64 `json:"maxPrice"`
}

// WithMinPrice moves the lower bound; pushing it past MaxPrice drags MaxPrice along.
func (f Filters) WithMinPrice(v float64) Filters {
	v = clamp(v, 0, math.MaxFloat64)
	f.MinPrice = v
	if v > f.MaxPrice {
		f.MaxPrice = v
	}
	return f
}

// WithMaxPrice moves the upper bound; pushing it below MinPrice drags MinPrice along.
func (f Filters) WithMaxPrice(v float64) Filters {
	v = clamp(v, 0, math.MaxFloat64)
	f.MaxPrice = v
	if v < f.MinPrice {
		f.MinPrice = v
	}
	return f
}

// WithCategory selects a category; blank selects all.
func (f Filters) WithCategory(c string) Filters {
	c = strings.TrimSpace(c)
	if c == "" {
		c = AllCategories
	}
	f.Category = c
	return f
}

func (f Filters) Match(p models.Product) bool {
	categoryMatch := f.Category == "" || f.Category == AllCategories || p.Category == f.Category
	priceMatch := p.Price >= f.MinPrice && p.Price <= f.MaxPrice
	return categoryMatch && priceMatch
}

// Apply filters then sorts. The result is a new slice; products is not
// modified. SortDefault keeps upstream order and every sort is stable.
func Apply(products []models.Product, f Filters, sortBy SortOption) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			out = append(out, p)
		}
	}

	switch sortBy {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b models.Product) int { return cmp.Compare(a.Price, b.Price) })
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b models.Product) int { return cmp.Compare(b.Price, a.Price) })
	case SortRatingDesc:
		slices.SortStableFunc(out, func(a, b models.Product) int { return cmp.Compare(b.Rating, a.Rating) })
	}

	return out
}

// Categories returns "all" followed by the distinct categories in first-seen order.
func Categories(products []models.Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := []string{AllCategories}
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// PriceCeiling is the slider maximum: the highest price (at least 100)
// rounded up to the next hundred.
func PriceCeiling(products []models.Product) float64 {
	highest := 100.0
	for _, p := range products {
		highest = math.Max(highest, p.Price)
	}
	return math.Ceil(highest/100) * 100
}

// DefaultFilters selects every product in the list.
func DefaultFilters(products []models.Product) Filters {
	return Filters{Category: AllCategories, MinPrice: 0, MaxPrice: PriceCeiling(products)}
}

// ByCategory matches category names case-insensitively, also accepting the
// dashed slug form ("pre-workout" matches "Pre Workout").
func ByCategory(products []models.Product, category string) []models.Product {
	category = strings.TrimSpace(category)
	spaced := strings.ReplaceAll(category, "-", " ")
	return selectWhere(products, func(p models.Product) bool {
		return strings.EqualFold(p.Category, category) || strings.EqualFold(p.Category, spaced)
	})
}

func Featured(products []models.Product) []models.Product {
	return selectWhere(products, func(p models.Product) bool { return p.IsFeatured })
}

func Exclusive(products []models.Product) []models.Product {
	return selectWhere(products, func(p models.Product) bool { return p.IsExclusive })
}

func selectWhere(products []models.Product, keep func(models.Product) bool) []models.Product {
	out := make([]models.Product, 0)
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// CategoryTitle turns a URL slug such as "pre-workout" into "Pre Workout".
func CategoryTitle(slug string) string {
	words := strings.Split(strings.TrimSpace(slug), "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		words[i] = string(unicode.ToUpper(r[0])) + string(r[1:])
	}
	return strings.Join(words, " ")
}
