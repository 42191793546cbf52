package handlers

import (
	"net/http"

	"nbhd_backend/internal/middleware"
	"nbhd_backend/internal/services"
	"nbhd_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type VibeCheckHandler struct {
	BaseHandler
	vibeCheckService *services.VibeCheckService
}

func NewVibeCheckHandler(base BaseHandler, vibeCheckService *services.VibeCheckService) *VibeCheckHandler {
	return &VibeCheckHandler{BaseHandler: base, vibeCheckService: vibeCheckService}
}

// RegisterRoutes: the whole surface requires a logged-in user, both the
// availability side (residents offering slots) and the booking side.
func (h *VibeCheckHandler) RegisterRoutes(rg *gin.RouterGroup) {
	vibeChecks := rg.Group("/vibechecks", middleware.AuthMiddleware())
	{
		vibeChecks.POST("/availability", h.CreateAvailability)
		vibeChecks.GET("/availability", h.GetMyAvailabilities)
		vibeChecks.GET("/availability/neighborhood/:neighborhoodId", h.GetAvailabilitiesByNeighborhood)
		vibeChecks.DELETE("/availability/:availabilityId", h.DeleteAvailability)

		vibeChecks.POST("", h.Create)
		vibeChecks.GET("", h.GetMine)
		vibeChecks.DELETE("/:vibeCheckId", h.Delete)
	}
}

func (h *VibeCheckHandler) CreateAvailability(c *gin.Context) {
	var req dto.CreateAvailabilityRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	availability, err := h.vibeCheckService.CreateAvailability(h.GetDB(c), middleware.GetUserID(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, availability)
}

func (h *VibeCheckHandler) GetMyAvailabilities(c *gin.Context) {
	availabilities, err := h.vibeCheckService.GetMyAvailabilities(h.GetDB(c), middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, availabilities)
}

func (h *VibeCheckHandler) GetAvailabilitiesByNeighborhood(c *gin.Context) {
	availabilities, err := h.vibeCheckService.GetAvailabilitiesByNeighborhood(
		h.GetDB(c), middleware.GetUserID(c), c.Param("neighborhoodId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, availabilities)
}

func (h *VibeCheckHandler) DeleteAvailability(c *gin.Context) {
	if err := h.vibeCheckService.DeleteAvailability(h.GetDB(c), middleware.GetUserID(c), c.Param("availabilityId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability withdrawn."})
}

func (h *VibeCheckHandler) Create(c *gin.Context) {
	var req dto.CreateVibeCheckRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	vibeCheck, err := h.vibeCheckService.CreateVibeCheck(h.GetDB(c), middleware.GetUserID(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vibeCheck)
}

func (h *VibeCheckHandler) GetMine(c *gin.Context) {
	vibeChecks, err := h.vibeCheckService.GetMyVibeChecks(h.GetDB(c), middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, vibeChecks)
}

func (h *VibeCheckHandler) Delete(c *gin.Context) {
	if err := h.vibeCheckService.DeleteVibeCheck(h.GetDB(c), middleware.GetUserID(c), c.Param("vibeCheckId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vibe check cancelled."})
}
