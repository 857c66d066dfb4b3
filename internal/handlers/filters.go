package handlers

import (
	"github.com/gin-gonic/gin"

	"storefront/internal/catalog"
	"storefront/internal/logx"
	"storefront/internal/models"
)

// listingQuery is the filter state carried in the listing URL. Adjust names
// the price bound the shopper moved last ("min" or "max"); that bound wins
// when the two cross.
type listingQuery struct {
	Category string   `form:"category"`
	MinPrice *float64 `form:"minPrice"`
	MaxPrice *float64 `form:"maxPrice"`
	Sort     string   `form:"sort"`
	Adjust   string   `form:"adjust"`
}

// listingFilters starts from filters that select everything and applies the
// query on top. An unparsable query falls back to the defaults.
func listingFilters(c *gin.Context, products []models.Product) (catalog.Filters, catalog.SortOption) {
	f := catalog.DefaultFilters(products)

	var q listingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logx.Debug().Err(err).Str("query", c.Request.URL.RawQuery).Msg("ignoring invalid listing query")
		return f, catalog.SortDefault
	}

	f = f.WithCategory(q.Category)
	applyMin := func() {
		if q.MinPrice != nil {
			f = f.WithMinPrice(*q.MinPrice)
		}
	}
	applyMax := func() {
		if q.MaxPrice != nil {
			f = f.WithMaxPrice(*q.MaxPrice)
		}
	}
	if q.Adjust == "max" {
		applyMin()
		applyMax()
	} else {
		applyMax()
		applyMin()
	}

	return f, catalog.ParseSortOption(q.Sort)
}
