package handlers

import (
	"net/http"

	"nbhd_backend/internal/middleware"
	"nbhd_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	BaseHandler
	userService *services.UserService
}

func NewUserHandler(base BaseHandler, userService *services.UserService) *UserHandler {
	return &UserHandler{BaseHandler: base, userService: userService}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users", middleware.AuthMiddleware())
	{
		users.GET("/me", h.GetMe)
		users.DELETE("/me", h.DeleteMe)
	}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	user, err := h.userService.GetByID(h.GetDB(c), middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteMe removes the account and all its content.
func (h *UserHandler) DeleteMe(c *gin.Context) {
	if err := h.userService.DeleteAccount(h.GetDB(c), middleware.GetUserID(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted."})
}
