package catalog

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
)

func TestPresent_Discount(t *testing.T) {
	p := models.Product{ID: "a", Price: 100, OnSale: true, DiscountPercentage: 20, IsInStock: true}

	d := Present(p)
	assert.True(t, d.HasDiscount)
	assert.Equal(t, "100.00", d.PriceText)
	assert.Equal(t, "125.00", d.OriginalPriceText)
	assert.Equal(t, "25.00", d.SavingsText)
	assert.Equal(t, InStockLabel, d.StockLabel)
	assert.Equal(t, "/product/a", d.URL)
	assert.Equal(t, p, d.Product)
}

func TestOriginalPrice(t *testing.T) {
	tests := []struct {
		name       string
		product    models.Product
		want       string
		discounted bool
	}{
		{name: "twenty percent", product: models.Product{Price: 100, OnSale: true, DiscountPercentage: 20}, want: "125.00", discounted: true},
		{name: "rounds to cents", product: models.Product{Price: 19.99, OnSale: true, DiscountPercentage: 15}, want: "23.52", discounted: true},
		{name: "not on sale", product: models.Product{Price: 100, DiscountPercentage: 20}, want: "100.00"},
		{name: "zero discount", product: models.Product{Price: 100, OnSale: true}, want: "100.00"},
		{name: "full discount guarded", product: models.Product{Price: 100, OnSale: true, DiscountPercentage: 100}, want: "100.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := OriginalPrice(tt.product)
			assert.Equal(t, tt.discounted, ok)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestPresent_FullDiscountHasNoOriginalPrice(t *testing.T) {
	d := Present(models.Product{ID: "x", Price: 40, OnSale: true, DiscountPercentage: 100})
	assert.False(t, d.HasDiscount)
	assert.Empty(t, d.OriginalPriceText)
	assert.Empty(t, d.SavingsText)
	require.NotEmpty(t, d.Badges)
	assert.Equal(t, Badge{Kind: BadgeSale, Label: "100% OFF"}, d.Badges[0])
	assert.Equal(t, OutOfStockLabel, d.StockLabel)
}

func TestBadges_Order(t *testing.T) {
	p := models.Product{
		OnSale: true, DiscountPercentage: 12.5,
		IsNewArrival: true, IsFeatured: true, IsExclusive: true,
	}
	assert.Equal(t, []Badge{
		{Kind: BadgeSale, Label: "12.5% OFF"},
		{Kind: BadgeNew, Label: "NEW"},
		{Kind: BadgeFeatured, Label: "FEATURED"},
		{Kind: BadgeExclusive, Label: "EXCLUSIVE"},
	}, Badges(p))

	assert.Equal(t, []Badge{{Kind: BadgeExclusive, Label: "EXCLUSIVE"}}, Badges(models.Product{DiscountPercentage: 30, IsExclusive: true}))
	assert.Empty(t, Badges(models.Product{}))
}

func TestPresent_PlaceholderIsNotLinked(t *testing.T) {
	for _, id := range []string{"temp-3", "undefined", ""} {
		d := Present(models.Product{ID: id, Name: "Ghost"})
		assert.False(t, d.Navigable, id)
		assert.Empty(t, d.URL, id)
	}
}

func TestProductPath(t *testing.T) {
	assert.Equal(t, "/product/65f1c0ffee0000000000abcd", ProductPath("65f1c0ffee0000000000abcd"))
	assert.Equal(t, "/product/a%2Fb", ProductPath("a/b"))
}

func TestInquiryLink(t *testing.T) {
	p := models.Product{
		ID:          "abc",
		Name:        "Whey Gold",
		Category:    "Protein",
		Price:       59.5,
		Rating:      4.5,
		Description: strings.Repeat("é", 200),
	}

	link := InquiryLink(p, "+92 (304) 533-5175", "https://shop.example.com/")
	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/923045335175", u.Path)

	text := u.Query().Get("text")
	assert.Contains(t, text, "*Product Name:* Whey Gold\n")
	assert.Contains(t, text, "*Price:* $59.50\n")
	assert.Contains(t, text, "*Category:* Protein\n")
	assert.Contains(t, text, "*Rating:* 4.5/5\n")
	assert.Contains(t, text, "*Description:* "+strings.Repeat("é", 150)+"...\n")
	assert.NotContains(t, text, strings.Repeat("é", 151))
	assert.Contains(t, text, "*Product Link:* https://shop.example.com/product/abc\n")
	assert.Equal(t, InquiryMessage(p, "https://shop.example.com/product/abc"), text)
}

func TestSummarize(t *testing.T) {
	s := Summarize([]models.Product{
		{Category: "Protein", Price: 10.5, QuantityInStock: 2, IsInStock: true, OnSale: true, DiscountPercentage: 10},
		{Category: "Protein", Price: 3, QuantityInStock: 0},
		{Category: "BCAA", Price: 0.1, QuantityInStock: 3, IsInStock: true, OnSale: true},
	})
	assert.Equal(t, Summary{
		Products:       3,
		InStock:        2,
		OutOfStock:     1,
		OnSale:         1,
		Units:          5,
		InventoryValue: "21.30",
		Categories:     2,
	}, s)

	assert.Equal(t, "0.00", Summarize(nil).InventoryValue)
}
