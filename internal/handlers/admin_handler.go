package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"storefront/internal/catalog"
	"storefront/internal/errx"
	"storefront/internal/models"
	"storefront/internal/responses"
	"storefront/internal/services"
	"storefront/internal/session"
)

type AdminHandler struct {
	productService *services.ProductService
}

func NewAdminHandler(productService *services.ProductService) *AdminHandler {
	return &AdminHandler{productService: productService}
}

type dashboardPage struct {
	Summary catalog.Summary
}

type adminProductsPage struct {
	Products []catalog.Display
}

type productForm struct {
	Action     string
	Submit     string
	Input      models.ProductInput
	Categories []string
}

func newProductForm(action, submit string, in models.ProductInput) productForm {
	return productForm{Action: action, Submit: submit, Input: in, Categories: formCategories(in.Category)}
}

// formCategories keeps a product's unknown category selectable on the edit form.
func formCategories(current string) []string {
	for _, c := range models.Categories {
		if c == current {
			return models.Categories
		}
	}
	if current == "" {
		return models.Categories
	}
	return append([]string{current}, models.Categories...)
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	responses.HTML(c, http.StatusOK, "dashboard", "Dashboard", dashboardPage{
		Summary: h.productService.Dashboard(c.Request.Context()),
	})
}

func (h *AdminHandler) Products(c *gin.Context) {
	products := h.productService.Catalog(c.Request.Context())
	responses.HTML(c, http.StatusOK, "admin_products", "Products", adminProductsPage{
		Products: catalog.PresentAll(products),
	})
}

func (h *AdminHandler) AddPage(c *gin.Context) {
	in := models.ProductInput{Category: models.Categories[0], Size: models.DefaultSize}
	responses.HTML(c, http.StatusOK, "admin_form", "Add Product", newProductForm("/products", "Add Product", in))
}

func (h *AdminHandler) Create(c *gin.Context) {
	var in models.ProductInput
	if err := c.ShouldBind(&in); err != nil {
		responses.HTMLError(c, http.StatusBadRequest, "admin_form", "Add Product", newProductForm("/products", "Add Product", in), "Please check the product fields: "+err.Error())
		return
	}

	if _, err := h.productService.Create(c.Request.Context(), token(c), in); err != nil {
		responses.HTMLError(c, errx.StatusOf(err), "admin_form", "Add Product", newProductForm("/products", "Add Product", in), "Failed to add product: "+errx.MessageOf(err))
		return
	}
	redirectWithNotice(c, "/products", "Product added successfully!")
}

func (h *AdminHandler) EditPage(c *gin.Context) {
	id := c.Param("id")
	product := h.productService.Product(c.Request.Context(), id)
	if product == nil {
		responses.NotFound(c, "Product Not Found", "This product could not be loaded for editing.", "/products", "Back to products")
		return
	}
	responses.HTML(c, http.StatusOK, "admin_form", "Edit Product", newProductForm(editPath(id), "Update Product", models.InputFrom(*product)))
}

func (h *AdminHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var in models.ProductInput
	if err := c.ShouldBind(&in); err != nil {
		responses.HTMLError(c, http.StatusBadRequest, "admin_form", "Edit Product", newProductForm(editPath(id), "Update Product", in), "Please check the product fields: "+err.Error())
		return
	}

	if _, err := h.productService.Update(c.Request.Context(), token(c), id, in); err != nil {
		responses.HTMLError(c, errx.StatusOf(err), "admin_form", "Edit Product", newProductForm(editPath(id), "Update Product", in), "Failed to update product: "+errx.MessageOf(err))
		return
	}
	redirectWithNotice(c, "/products", "Product updated successfully!")
}

func (h *AdminHandler) Delete(c *gin.Context) {
	if err := h.productService.Delete(c.Request.Context(), token(c), c.Param("id")); err != nil {
		redirectWithNotice(c, "/products", "Failed to delete product: "+errx.MessageOf(err))
		return
	}
	redirectWithNotice(c, "/products", "Product deleted successfully!")
}

func editPath(id string) string {
	return "/products/edit/" + url.PathEscape(id)
}

// token is the admin's upstream credential; RequireAccess guarantees a session.
func token(c *gin.Context) string {
	if sess := session.Current(c); sess != nil {
		return sess.Token
	}
	return ""
}

func redirectWithNotice(c *gin.Context, path, notice string) {
	c.Redirect(http.StatusSeeOther, path+"?"+url.Values{"notice": {notice}}.Encode())
}
