package routes

import (
	"github.com/gin-gonic/gin"

	"storefront/internal/handlers"
	"storefront/internal/middlewares"
)

type AdminRoutes struct {
	handler *handlers.AdminHandler
}

func NewAdminRoutes(handler *handlers.AdminHandler) *AdminRoutes {
	return &AdminRoutes{handler: handler}
}

func (r *AdminRoutes) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("")
	admin.Use(middlewares.RequireAccess(middlewares.AdminOnly))
	{
		admin.GET("/dashboard", r.handler.Dashboard)

		admin.GET("/products", r.handler.Products)
		admin.POST("/products", r.handler.Create)
		admin.GET("/products/add", r.handler.AddPage)
		admin.GET("/products/edit/:id", r.handler.EditPage)
		admin.POST("/products/edit/:id", r.handler.Update)
		admin.POST("/products/:id/delete", r.handler.Delete)
	}
}
