package routes

import (
	"github.com/gin-gonic/gin"

	"storefront/internal/handlers"
)

type AuthRoutes struct {
	handler *handlers.AuthHandler
}

func NewAuthRoutes(handler *handlers.AuthHandler) *AuthRoutes {
	return &AuthRoutes{handler: handler}
}

func (r *AuthRoutes) RegisterRoutes(router *gin.RouterGroup) {
	// Admin login page
	router.GET("/login", r.handler.LoginPage)
	router.POST("/login", r.handler.AdminLogin)

	auth := router.Group("/auth")
	{
		auth.POST("/login", r.handler.Login)
		auth.POST("/register", r.handler.Register)
		auth.POST("/logout", r.handler.Logout)
	}
}
