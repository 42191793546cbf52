package handlers

import (
	"net/http"

	"nbhd_backend/internal/middleware"
	"nbhd_backend/internal/services"
	"nbhd_backend/internal/services/dto"
	"nbhd_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ResidencyHandler struct {
	BaseHandler
	residencyService *services.ResidencyService
}

func NewResidencyHandler(base BaseHandler, residencyService *services.ResidencyService) *ResidencyHandler {
	return &ResidencyHandler{BaseHandler: base, residencyService: residencyService}
}

func (h *ResidencyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	residency := rg.Group("/residency", middleware.AuthMiddleware())
	{
		residency.GET("/isCertified", h.IsCertified)
		residency.GET("/users", h.GetByUser)
		residency.GET("/neighborhoods", h.GetByNeighborhood)
		residency.POST("", h.Certify)
		residency.DELETE("/:residencyId", h.Revoke)
	}
}

// IsCertified answers {"isCertified": bool} for a (user, neighborhood) pair.
func (h *ResidencyHandler) IsCertified(c *gin.Context) {
	user := c.Query("user")
	neighborhoodID := c.Query("neighborhoodId")
	if user == "" || neighborhoodID == "" {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Query parameters 'user' and 'neighborhoodId' are required."))
		return
	}

	certified, err := h.residencyService.IsCertified(h.GetDB(c), user, neighborhoodID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isCertified": certified})
}

func (h *ResidencyHandler) GetByUser(c *gin.Context) {
	user := c.Query("user")
	if user == "" {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Query parameter 'user' is required."))
		return
	}

	residencies, err := h.residencyService.GetAllByUser(h.GetDB(c), user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, residencies)
}

func (h *ResidencyHandler) GetByNeighborhood(c *gin.Context) {
	var query dto.NeighborhoodQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	residencies, err := h.residencyService.GetAllByNeighborhood(h.GetDB(c), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, residencies)
}

func (h *ResidencyHandler) Certify(c *gin.Context) {
	var req dto.CreateResidencyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	residency, err := h.residencyService.Certify(h.GetDB(c), middleware.GetUserID(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, residency)
}

func (h *ResidencyHandler) Revoke(c *gin.Context) {
	if err := h.residencyService.Revoke(h.GetDB(c), middleware.GetUserID(c), c.Param("residencyId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Certification revoked."})
}
