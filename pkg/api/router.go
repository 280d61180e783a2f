package api

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"spaceshare-landing/pkg/config"
	"spaceshare-landing/pkg/middleware"
	"spaceshare-landing/pkg/services"
)

// NewRouter assembles the gin engine: middleware chain, landing page,
// static assets, and the API routes.
func NewRouter(cfg *config.Config, leadService services.LeadService) *gin.Engine {
	r := gin.New()

	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler())

	handlers := NewHandlers(leadService)

	r.LoadHTMLGlob(filepath.Join(cfg.WebDir, "templates", "*.html"))
	r.Static("/static", filepath.Join(cfg.WebDir, "static"))

	r.GET("/", handlers.Landing)
	r.GET("/health", handlers.HealthCheck)

	api := r.Group("/api")
	api.POST("/subscribe", middleware.RateLimit(middleware.RateLimitConfig{
		Limit:  cfg.SubscribeRateLimit,
		Window: cfg.SubscribeRateWindow,
	}), handlers.Subscribe)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
