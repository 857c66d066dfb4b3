package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"storefront/internal/catalog"
	"storefront/internal/models"
)

func queryContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/product?"+rawQuery, nil)
	return c
}

func TestListingFilters(t *testing.T) {
	products := []models.Product{{Price: 40, Category: "Protein"}, {Price: 250, Category: "BCAA"}}

	tests := []struct {
		name  string
		query string
		want  catalog.Filters
		sort  catalog.SortOption
	}{
		{name: "defaults", query: "", want: catalog.Filters{Category: "all", MinPrice: 0, MaxPrice: 300}},
		{name: "category and sort", query: "category=BCAA&sort=rating_desc", want: catalog.Filters{Category: "BCAA", MinPrice: 0, MaxPrice: 300}, sort: catalog.SortRatingDesc},
		{name: "bounds", query: "minPrice=20&maxPrice=120", want: catalog.Filters{Category: "all", MinPrice: 20, MaxPrice: 120}},
		{name: "crossed min wins", query: "minPrice=200&maxPrice=50", want: catalog.Filters{Category: "all", MinPrice: 200, MaxPrice: 200}},
		{name: "crossed max wins", query: "minPrice=200&maxPrice=50&adjust=max", want: catalog.Filters{Category: "all", MinPrice: 50, MaxPrice: 50}},
		{name: "negative clamps", query: "minPrice=-5", want: catalog.Filters{Category: "all", MinPrice: 0, MaxPrice: 300}},
		{name: "unknown sort", query: "sort=cheapest", want: catalog.Filters{Category: "all", MinPrice: 0, MaxPrice: 300}},
		{name: "garbage falls back", query: "minPrice=abc&sort=price_asc", want: catalog.Filters{Category: "all", MinPrice: 0, MaxPrice: 300}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, sortBy := listingFilters(queryContext(tt.query), products)
			assert.Equal(t, tt.want, f)
			want := tt.sort
			if want == "" {
				want = catalog.SortDefault
			}
			assert.Equal(t, want, sortBy)
		})
	}
}

func TestFormCategories(t *testing.T) {
	assert.Equal(t, models.Categories, formCategories("Protein"))
	assert.Equal(t, models.Categories, formCategories(""))

	got := formCategories("Vitamins")
	assert.Equal(t, "Vitamins", got[0])
	assert.Len(t, got, len(models.Categories)+1)
}
