package api

import (
	"github.com/gin-gonic/gin"

	"github.com/smartgym/backend-go/internal/handler"
	"github.com/smartgym/backend-go/internal/middleware"
	"github.com/smartgym/backend-go/internal/observability"
)

// SetupRouter wires the HTTP surface. authMiddleware may be nil, in which
// case the API routes are public.
func SetupRouter(
	healthHandler *HealthHandler,
	gymHandler *handler.GymHandler,
	userHandler *handler.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter middleware.RateLimiter,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), observability.GinMiddleware())
	r.SetTrustedProxies(nil)

	// Public routes
	r.GET("/api/v1/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(observability.Handler()))

	// API routes
	api := r.Group("/api/v1")
	if authMiddleware != nil {
		api.Use(authMiddleware.RequireAuth())
	}
	api.Use(middleware.RateLimit(rateLimiter))

	gyms := api.Group("/gyms")
	{
		gyms.POST("", gymHandler.Create)
		gyms.GET("", gymHandler.FindAll)
		gyms.GET("/:id", gymHandler.FindOne)
		gyms.PATCH("/:id", gymHandler.Update)
		gyms.PUT("/:id", gymHandler.Update)
		gyms.DELETE("/:id", gymHandler.Remove)
	}

	users := api.Group("/users")
	{
		users.POST("", userHandler.Create)
		users.GET("", userHandler.FindAll)
		users.GET("/:id", userHandler.FindOne)
		users.GET("/:id/gyms", gymHandler.FindByUser)
		users.PATCH("/:id", userHandler.Update)
		users.PUT("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Remove)
	}

	return r
}
