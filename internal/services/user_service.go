package services

import (
	"nbhd_backend/internal/logger"
	"nbhd_backend/internal/metrics"
	"nbhd_backend/internal/repositories"
	"nbhd_backend/internal/services/dto"
	"nbhd_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService struct {
	userRepo         repositories.UserRepository
	reviewRepo       repositories.ReviewRepository
	strollRepo       repositories.StrollRepository
	residencyRepo    repositories.ResidencyRepository
	availabilityRepo repositories.AvailabilityRepository
	vibeCheckRepo    repositories.VibeCheckRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	reviewRepo repositories.ReviewRepository,
	strollRepo repositories.StrollRepository,
	residencyRepo repositories.ResidencyRepository,
	availabilityRepo repositories.AvailabilityRepository,
	vibeCheckRepo repositories.VibeCheckRepository,
) *UserService {
	return &UserService{
		userRepo:         userRepo,
		reviewRepo:       reviewRepo,
		strollRepo:       strollRepo,
		residencyRepo:    residencyRepo,
		availabilityRepo: availabilityRepo,
		vibeCheckRepo:    vibeCheckRepo,
	}
}

func (s *UserService) GetByID(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "user", "User not found.")
		}
		return nil, apperrors.InternalError(err)
	}
	response := dto.NewUserResponse(user)
	return &response, nil
}

// DeleteAccount removes the user and everything authored by or scheduled with
// them: reviews, strolls, residencies, availabilities with their booked vibe
// checks, and vibe checks on either side. One transaction; a failure midway
// leaves nothing half-deleted.
func (s *UserService) DeleteAccount(db *gorm.DB, userID string) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, "user", "User not found.")
		}
		return apperrors.InternalError(err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		reviews, err := s.reviewRepo.DeleteAllByAuthor(tx, userID)
		if err != nil {
			return err
		}
		strolls, err := s.strollRepo.DeleteAllByAuthor(tx, userID)
		if err != nil {
			return err
		}
		residencies, err := s.residencyRepo.DeleteAllByUser(tx, userID)
		if err != nil {
			return err
		}

		availabilities, err := s.availabilityRepo.FindAllByUser(tx, userID)
		if err != nil {
			return err
		}
		availabilityIDs := make([]string, 0, len(availabilities))
		for _, a := range availabilities {
			availabilityIDs = append(availabilityIDs, a.ID)
		}
		vibeChecks, err := s.vibeCheckRepo.DeleteAllByAvailabilityIDs(tx, availabilityIDs)
		if err != nil {
			return err
		}
		if _, err := s.availabilityRepo.DeleteAllByUser(tx, userID); err != nil {
			return err
		}
		more, err := s.vibeCheckRepo.DeleteAllForUser(tx, userID)
		if err != nil {
			return err
		}
		vibeChecks += more

		if err := s.userRepo.Delete(tx, userID); err != nil {
			return err
		}

		metrics.DeletedRecords.WithLabelValues("review").Add(float64(reviews))
		metrics.DeletedRecords.WithLabelValues("stroll").Add(float64(strolls))
		metrics.DeletedRecords.WithLabelValues("residency").Add(float64(residencies))
		metrics.DeletedRecords.WithLabelValues("availability").Add(float64(len(availabilities)))
		metrics.DeletedRecords.WithLabelValues("vibe_check").Add(float64(vibeChecks))
		return nil
	})
	if err != nil {
		return apperrors.InternalError(err)
	}

	metrics.CascadeDeletes.WithLabelValues("user").Inc()
	logger.Info("account deleted", "username", user.Username, "user_id", userID)
	return nil
}
