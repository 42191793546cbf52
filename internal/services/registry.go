package services

import "nbhd_backend/internal/repositories"

// ServiceContainer wires every service over the shared repository set.
type ServiceContainer struct {
	Auth         *AuthService
	User         *UserService
	Neighborhood *NeighborhoodService
	Review       *ReviewService
	Stroll       *StrollService
	Residency    *ResidencyService
	VibeCheck    *VibeCheckService
}

func NewServiceContainer() *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	neighborhoodRepo := repositories.NewNeighborhoodRepository()
	reviewRepo := repositories.NewReviewRepository()
	strollRepo := repositories.NewStrollRepository()
	residencyRepo := repositories.NewResidencyRepository()
	availabilityRepo := repositories.NewAvailabilityRepository()
	vibeCheckRepo := repositories.NewVibeCheckRepository()

	return &ServiceContainer{
		Auth: NewAuthService(userRepo),
		User: NewUserService(
			userRepo, reviewRepo, strollRepo, residencyRepo, availabilityRepo, vibeCheckRepo,
		),
		Neighborhood: NewNeighborhoodService(
			neighborhoodRepo, reviewRepo, strollRepo, residencyRepo, availabilityRepo, vibeCheckRepo,
		),
		Review:    NewReviewService(reviewRepo, neighborhoodRepo, userRepo),
		Stroll:    NewStrollService(strollRepo, neighborhoodRepo),
		Residency: NewResidencyService(residencyRepo, neighborhoodRepo, userRepo),
		VibeCheck: NewVibeCheckService(availabilityRepo, vibeCheckRepo, neighborhoodRepo),
	}
}
