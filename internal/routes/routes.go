package routes

import (
	"github.com/gin-gonic/gin"

	"storefront/internal/handlers"
)

type Handlers struct {
	Shop  *handlers.ShopHandler
	Auth  *handlers.AuthHandler
	Admin *handlers.AdminHandler
	API   *handlers.APIHandler
}

// RegisterRoutes mounts the site at / and the JSON API at /api/v1. apiMiddleware
// runs only for the API group.
func RegisterRoutes(router *gin.Engine, h Handlers, apiMiddleware ...gin.HandlerFunc) {
	site := router.Group("/")

	NewShopRoutes(h.Shop).RegisterRoutes(site)
	NewAuthRoutes(h.Auth).RegisterRoutes(site)
	NewAdminRoutes(h.Admin).RegisterRoutes(site)

	api := router.Group("/api/v1", apiMiddleware...)
	NewAPIRoutes(h.API).RegisterRoutes(api)

	router.GET("/healthz", h.API.Health)
}
