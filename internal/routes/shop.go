package routes

import (
	"github.com/gin-gonic/gin"

	"storefront/internal/handlers"
	"storefront/internal/middlewares"
)

type ShopRoutes struct {
	handler *handlers.ShopHandler
}

func NewShopRoutes(handler *handlers.ShopHandler) *ShopRoutes {
	return &ShopRoutes{handler: handler}
}

func (r *ShopRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", r.handler.Home)
	router.GET("/about", r.handler.About)
	router.GET("/contacts", r.handler.Contacts)
	router.GET("/shop/:category", r.handler.Category)

	products := router.Group("/product")
	{
		products.GET("", r.handler.Listing)
		products.GET("/:productId", r.handler.Detail)
		products.GET("/:productId/inquiry", r.handler.Inquiry)
	}

	router.GET("/account", middlewares.RequireAccess(middlewares.Authenticated), r.handler.Account)
}
