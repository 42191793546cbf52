package handlers

import (
	"nbhd_backend/internal/services"
	"nbhd_backend/internal/validator"
)

// AppHandlers collects every HTTP handler.
type AppHandlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Neighborhood *NeighborhoodHandler
	Review       *ReviewHandler
	Stroll       *StrollHandler
	Residency    *ResidencyHandler
	VibeCheck    *VibeCheckHandler
}

func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:         NewAuthHandler(base, container.Auth),
		User:         NewUserHandler(base, container.User),
		Neighborhood: NewNeighborhoodHandler(base, container.Neighborhood),
		Review:       NewReviewHandler(base, container.Review),
		Stroll:       NewStrollHandler(base, container.Stroll),
		Residency:    NewResidencyHandler(base, container.Residency),
		VibeCheck:    NewVibeCheckHandler(base, container.VibeCheck),
	}
}
