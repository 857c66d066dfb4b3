package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/catalog"
	"storefront/internal/models"
	"storefront/internal/responses"
	"storefront/internal/services"
	"storefront/internal/session"
)

type ShopHandler struct {
	productService *services.ProductService
	inquiryPhone   string
	publicBaseURL  string
}

func NewShopHandler(productService *services.ProductService, inquiryPhone, publicBaseURL string) *ShopHandler {
	return &ShopHandler{
		productService: productService,
		inquiryPhone:   inquiryPhone,
		publicBaseURL:  publicBaseURL,
	}
}

type categoryLink struct {
	Name string
	Slug string
}

type homePage struct {
	Featured   []catalog.Display
	Exclusive  []catalog.Display
	Categories []categoryLink
}

type listingPage struct {
	Products     []catalog.Display
	Total        int
	Filters      catalog.Filters
	Sort         catalog.SortOption
	SortOptions  []catalog.SortOption
	Categories   []string
	PriceCeiling float64
}

type detailPage struct {
	Product     catalog.Display
	InquiryPath string
}

type categoryPage struct {
	Title    string
	Products []catalog.Display
}

type contactsPage struct {
	Phone    string
	WhatsApp string
	Email    string
}

func (h *ShopHandler) Home(c *gin.Context) {
	home := h.productService.Home(c.Request.Context())

	links := make([]categoryLink, 0, len(models.Categories))
	for _, name := range models.Categories {
		links = append(links, categoryLink{Name: name, Slug: strings.ToLower(strings.ReplaceAll(name, " ", "-"))})
	}

	responses.HTML(c, http.StatusOK, "home", "", homePage{
		Featured:   catalog.PresentAll(home.Featured),
		Exclusive:  catalog.PresentAll(home.Exclusive),
		Categories: links,
	})
}

func (h *ShopHandler) Listing(c *gin.Context) {
	products := h.productService.Catalog(c.Request.Context())
	filters, sortBy := listingFilters(c, products)

	responses.HTML(c, http.StatusOK, "listing", "Shop", listingPage{
		Products:     catalog.PresentAll(catalog.Apply(products, filters, sortBy)),
		Total:        len(products),
		Filters:      filters,
		Sort:         sortBy,
		SortOptions:  catalog.SortOptions,
		Categories:   catalog.Categories(products),
		PriceCeiling: catalog.PriceCeiling(products),
	})
}

func (h *ShopHandler) Detail(c *gin.Context) {
	product := h.product(c)
	if product == nil {
		return
	}

	responses.HTML(c, http.StatusOK, "detail", product.Name, detailPage{
		Product:     catalog.Present(*product),
		InquiryPath: catalog.ProductPath(product.ID) + "/inquiry",
	})
}

// Inquiry hands the shopper over to the store's WhatsApp account with a
// pre-filled message about the product.
func (h *ShopHandler) Inquiry(c *gin.Context) {
	product := h.product(c)
	if product == nil {
		return
	}
	c.Redirect(http.StatusFound, catalog.InquiryLink(*product, h.inquiryPhone, h.publicBaseURL))
}

func (h *ShopHandler) Category(c *gin.Context) {
	slug := c.Param("category")
	products := h.productService.Category(c.Request.Context(), slug)

	title := catalog.CategoryTitle(slug)
	responses.HTML(c, http.StatusOK, "category", title, categoryPage{
		Title:    title,
		Products: catalog.PresentAll(products),
	})
}

func (h *ShopHandler) About(c *gin.Context) {
	responses.HTML(c, http.StatusOK, "about", "About", nil)
}

func (h *ShopHandler) Contacts(c *gin.Context) {
	responses.HTML(c, http.StatusOK, "contacts", "Contact", contactsPage{
		Phone:    h.inquiryPhone,
		WhatsApp: "https://wa.me/" + h.inquiryPhone,
		Email:    "support@supplimax.pk",
	})
}

func (h *ShopHandler) Account(c *gin.Context) {
	sess := session.Current(c)
	responses.HTML(c, http.StatusOK, "account", "My Account", sess)
}

// product loads the :productId product or renders the not-found page and returns nil.
func (h *ShopHandler) product(c *gin.Context) *models.Product {
	id := c.Param("productId")
	if !models.ValidID(id) {
		responses.NotFound(c, "Product Not Available", "This product link is not valid.", "/product", "Back to products")
		return nil
	}

	product := h.productService.Product(c.Request.Context(), id)
	if product == nil {
		responses.NotFound(c, "Product Not Found", "We couldn't find this product. It may have been removed.", "/product", "Back to products")
		return nil
	}
	return product
}
