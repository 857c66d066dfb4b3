package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"storefront/internal/config"
	"storefront/internal/handlers"
	"storefront/internal/logx"
	"storefront/internal/middlewares"
	"storefront/internal/repositories"
	"storefront/internal/responses"
	"storefront/internal/routes"
	"storefront/internal/services"
	"storefront/internal/session"
	"storefront/internal/views"
)

type Server struct {
	cfg config.Config
	rdb *redis.Client
}

// NewServer wires the storefront and returns the HTTP server plus a cleanup
// func releasing the Redis connection, if one was opened.
func NewServer(cfg config.Config) (*http.Server, func(), error) {
	s := &Server{cfg: cfg}

	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		rdb, err := repositories.OpenRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		s.rdb = rdb
	}
	if s.rdb != nil {
		logx.Info().Msg("connected to redis, session revocation enabled")
	} else {
		logx.Warn().Msg("REDIS_URL not set, session revocation disabled")
	}

	var revoker session.Revoker
	if s.rdb != nil {
		revoker = repositories.NewRedisRepository(s.rdb)
	}

	router, err := NewRouter(cfg, revoker)
	if err != nil {
		s.close()
		return nil, nil, err
	}

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server, s.close, nil
}

func (s *Server) close() {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Close(); err != nil {
		logx.Warn().Err(err).Msg("failed to close redis client")
	}
}

// NewRouter builds the gin engine with every route registered. revoker may be nil.
func NewRouter(cfg config.Config, revoker session.Revoker) (*gin.Engine, error) {
	if cfg.Environment().IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	templates, err := views.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	sealer, err := session.NewSealer(cfg.Session.Secret)
	if err != nil {
		return nil, err
	}
	sessions := session.NewStore(sealer, session.Options{
		Secure:  cfg.Session.CookieSecure,
		MaxAge:  cfg.Session.MaxAge,
		Revoker: revoker,
	})

	// Dependency injection
	upstream := repositories.NewUpstreamClient(cfg.UpstreamURL, cfg.UpstreamTimeout)
	productRepo := repositories.NewProductRepository(upstream)
	authRepo := repositories.NewAuthRepository(upstream)

	productService := services.NewProductService(productRepo)
	authService := services.NewAuthService(authRepo, sessions)

	h := routes.Handlers{
		Shop:  handlers.NewShopHandler(productService, cfg.InquiryPhone, cfg.PublicBaseURL),
		Auth:  handlers.NewAuthHandler(authService, sessions),
		Admin: handlers.NewAdminHandler(productService),
		API:   handlers.NewAPIHandler(productService, cfg.InquiryPhone, cfg.PublicBaseURL),
	}

	router := gin.New()
	router.SetHTMLTemplate(templates)
	router.Use(
		middlewares.RequestIDMiddleware(),
		middlewares.RequestLogger(),
		gin.Recovery(),
	)
	router.Use(middlewares.LoadSession(sessions))

	// CORS is scoped to the JSON API; the site's own form posts carry an Origin too.
	var apiMiddleware []gin.HandlerFunc
	if len(cfg.CORSOrigins) > 0 {
		apiMiddleware = append(apiMiddleware, cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middlewares.RequestIDHeader},
			ExposeHeaders:    []string{middlewares.RequestIDHeader},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	routes.RegisterRoutes(router, h, apiMiddleware...)
	router.NoRoute(func(c *gin.Context) {
		responses.NotFound(c, "Page Not Found", "The page you are looking for does not exist.", "/", "Go home")
	})

	return router, nil
}
