package routes

import (
	"net/http"

	"nbhd_backend/internal/handlers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes mounts the API under /api/v1 plus the operational endpoints.
func SetupRoutes(router *gin.Engine, h *handlers.AppHandlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		h.Auth.RegisterRoutes(api)
		h.User.RegisterRoutes(api)
		h.Neighborhood.RegisterRoutes(api)
		h.Review.RegisterRoutes(api)
		h.Stroll.RegisterRoutes(api)
		h.Residency.RegisterRoutes(api)
		h.VibeCheck.RegisterRoutes(api)
	}
}
