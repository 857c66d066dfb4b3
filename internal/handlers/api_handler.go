package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/catalog"
	"storefront/internal/errx"
	"storefront/internal/models"
	"storefront/internal/responses"
	"storefront/internal/services"
)

// APIHandler serves the JSON projections of the catalog.
type APIHandler struct {
	productService *services.ProductService
	inquiryPhone   string
	publicBaseURL  string
}

func NewAPIHandler(productService *services.ProductService, inquiryPhone, publicBaseURL string) *APIHandler {
	return &APIHandler{
		productService: productService,
		inquiryPhone:   inquiryPhone,
		publicBaseURL:  publicBaseURL,
	}
}

type productList struct {
	Products     []catalog.Display  `json:"products"`
	Total        int                `json:"total"`
	Filters      catalog.Filters    `json:"filters"`
	Sort         catalog.SortOption `json:"sort"`
	Categories   []string           `json:"categories"`
	PriceCeiling float64            `json:"priceCeiling"`
}

type productDetail struct {
	catalog.Display
	InquiryURL string `json:"inquiryUrl"`
}

func (h *APIHandler) ListProducts(c *gin.Context) {
	products := h.productService.Catalog(c.Request.Context())
	filters, sortBy := listingFilters(c, products)
	result := catalog.Apply(products, filters, sortBy)

	responses.Success(c, http.StatusOK, productList{
		Products:     catalog.PresentAll(result),
		Total:        len(products),
		Filters:      filters,
		Sort:         sortBy,
		Categories:   catalog.Categories(products),
		PriceCeiling: catalog.PriceCeiling(products),
	}, "Products fetched successfully")
}

func (h *APIHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")
	if !models.ValidID(id) {
		err := errx.InvalidParam("product id", id)
		responses.Fail(c, errx.StatusOf(err), err, "Invalid product id")
		return
	}

	product := h.productService.Product(c.Request.Context(), id)
	if product == nil {
		responses.Fail(c, http.StatusNotFound, errors.New(errx.NotFoundMessage), "Product not found")
		return
	}

	responses.Success(c, http.StatusOK, productDetail{
		Display:    catalog.Present(*product),
		InquiryURL: catalog.InquiryLink(*product, h.inquiryPhone, h.publicBaseURL),
	}, "Product fetched successfully")
}

func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
