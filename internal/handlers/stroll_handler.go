package handlers

import (
	"net/http"

	"nbhd_backend/internal/middleware"
	"nbhd_backend/internal/services"
	"nbhd_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type StrollHandler struct {
	BaseHandler
	strollService *services.StrollService
}

func NewStrollHandler(base BaseHandler, strollService *services.StrollService) *StrollHandler {
	return &StrollHandler{BaseHandler: base, strollService: strollService}
}

func (h *StrollHandler) RegisterRoutes(rg *gin.RouterGroup) {
	strolls := rg.Group("/strolls", middleware.AuthMiddleware())
	{
		strolls.GET("", h.GetMine)
		strolls.GET("/neighborhood/:neighborhoodId", h.GetByNeighborhood)
		strolls.POST("", h.Create)
		strolls.DELETE("/:strollId", h.Delete)
	}
}

func (h *StrollHandler) GetMine(c *gin.Context) {
	strolls, err := h.strollService.GetAllByAuthor(h.GetDB(c), middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, strolls)
}

func (h *StrollHandler) GetByNeighborhood(c *gin.Context) {
	strolls, err := h.strollService.GetAllByNeighborhood(h.GetDB(c), c.Param("neighborhoodId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, strolls)
}

func (h *StrollHandler) Create(c *gin.Context) {
	var req dto.CreateStrollRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	stroll, err := h.strollService.Create(h.GetDB(c), middleware.GetUserID(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, stroll)
}

func (h *StrollHandler) Delete(c *gin.Context) {
	if err := h.strollService.Delete(h.GetDB(c), middleware.GetUserID(c), c.Param("strollId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stroll deleted."})
}
