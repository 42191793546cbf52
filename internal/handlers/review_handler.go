package handlers

import (
	"net/http"

	"nbhd_backend/internal/middleware"
	"nbhd_backend/internal/services"
	"nbhd_backend/internal/services/dto"
	"nbhd_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	BaseHandler
	reviewService *services.ReviewService
}

func NewReviewHandler(base BaseHandler, reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{BaseHandler: base, reviewService: reviewService}
}

func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reviews := rg.Group("/reviews", middleware.AuthMiddleware())
	{
		reviews.GET("/neighborhood/:neighborhoodId", h.GetByNeighborhood)
		reviews.GET("/author", h.GetByAuthor)
		reviews.POST("", h.Create)
		reviews.DELETE("/:reviewId", h.Delete)
	}
}

func (h *ReviewHandler) GetByNeighborhood(c *gin.Context) {
	reviews, err := h.reviewService.GetAllByNeighborhood(h.GetDB(c), c.Param("neighborhoodId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) GetByAuthor(c *gin.Context) {
	author := c.Query("author")
	if author == "" {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Query parameter 'author' is required."))
		return
	}

	reviews, err := h.reviewService.GetAllByAuthor(h.GetDB(c), author)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	review, err := h.reviewService.Create(h.GetDB(c), middleware.GetUserID(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.reviewService.Delete(h.GetDB(c), middleware.GetUserID(c), c.Param("reviewId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted."})
}
