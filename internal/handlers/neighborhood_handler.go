package handlers

import (
	"net/http"

	"nbhd_backend/internal/middleware"
	"nbhd_backend/internal/services"
	"nbhd_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type NeighborhoodHandler struct {
	BaseHandler
	neighborhoodService *services.NeighborhoodService
}

func NewNeighborhoodHandler(base BaseHandler, neighborhoodService *services.NeighborhoodService) *NeighborhoodHandler {
	return &NeighborhoodHandler{BaseHandler: base, neighborhoodService: neighborhoodService}
}

// RegisterRoutes: every route requires a logged-in user; writes are
// additionally admin-only and address a neighborhood by its
// (name, city, state) natural key in the query string.
func (h *NeighborhoodHandler) RegisterRoutes(rg *gin.RouterGroup) {
	neighborhoods := rg.Group("/neighborhoods", middleware.AuthMiddleware())
	{
		neighborhoods.GET("", h.Get)
		neighborhoods.GET("/location", h.GetByLocation)
		neighborhoods.GET("/box", h.GetInBox)

		admin := neighborhoods.Group("", middleware.AdminMiddleware())
		{
			admin.POST("", h.Create)
			admin.PATCH("", h.Update)
			admin.DELETE("", h.Delete)
		}
	}
}

// Get lists every neighborhood, or a single one when the natural-key query
// parameters are present.
func (h *NeighborhoodHandler) Get(c *gin.Context) {
	if c.Query("name") == "" && c.Query("city") == "" && c.Query("state") == "" {
		neighborhoods, err := h.neighborhoodService.GetAll(h.GetDB(c))
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, neighborhoods)
		return
	}

	var query dto.NeighborhoodQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	neighborhood, err := h.neighborhoodService.GetByIdentity(h.GetDB(c), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, neighborhood)
}

func (h *NeighborhoodHandler) GetByLocation(c *gin.Context) {
	var query dto.LocationQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	neighborhoods, err := h.neighborhoodService.GetAllByLocation(h.GetDB(c), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, neighborhoods)
}

func (h *NeighborhoodHandler) GetInBox(c *gin.Context) {
	var query dto.BoxQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	neighborhoods, err := h.neighborhoodService.GetAllInBox(h.GetDB(c), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, neighborhoods)
}

func (h *NeighborhoodHandler) Create(c *gin.Context) {
	var req dto.CreateNeighborhoodRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	neighborhood, err := h.neighborhoodService.Create(h.GetDB(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, neighborhood)
}

func (h *NeighborhoodHandler) Update(c *gin.Context) {
	var query dto.NeighborhoodQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	var req dto.UpdateNeighborhoodRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	neighborhood, err := h.neighborhoodService.Update(h.GetDB(c), query, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, neighborhood)
}

func (h *NeighborhoodHandler) Delete(c *gin.Context) {
	var query dto.NeighborhoodQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	if err := h.neighborhoodService.Delete(h.GetDB(c), query); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": dto.NeighborhoodLabel(query.Name, query.City, query.State) + " deleted.",
	})
}
