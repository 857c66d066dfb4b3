package routes

import (
	"github.com/gin-gonic/gin"

	"storefront/internal/handlers"
)

type APIRoutes struct {
	handler *handlers.APIHandler
}

func NewAPIRoutes(handler *handlers.APIHandler) *APIRoutes {
	return &APIRoutes{handler: handler}
}

func (r *APIRoutes) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", r.handler.ListProducts)
		products.GET("/:id", r.handler.GetProduct)
	}
}
