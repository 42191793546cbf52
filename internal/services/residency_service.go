package services

import (
	"nbhd_backend/internal/logger"
	"nbhd_backend/internal/models"
	"nbhd_backend/internal/repositories"
	"nbhd_backend/internal/services/dto"
	"nbhd_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ResidencyService struct {
	residencyRepo    repositories.ResidencyRepository
	neighborhoodRepo repositories.NeighborhoodRepository
	userRepo         repositories.UserRepository
}

func NewResidencyService(
	residencyRepo repositories.ResidencyRepository,
	neighborhoodRepo repositories.NeighborhoodRepository,
	userRepo repositories.UserRepository,
) *ResidencyService {
	return &ResidencyService{
		residencyRepo:    residencyRepo,
		neighborhoodRepo: neighborhoodRepo,
		userRepo:         userRepo,
	}
}

// Certify records the acting user as a resident of the neighborhood. A second
// certification for the same pair answers 409.
func (s *ResidencyService) Certify(db *gorm.DB, userID string, req dto.CreateResidencyRequest) (*dto.ResidencyResponse, error) {
	name, city, state := normalizeIdentity(req.Name, req.City, req.State)
	neighborhood, err := s.neighborhoodRepo.FindByIdentity(db, name, city, state)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNeighborhoodNotFound) {
			return nil, apperrors.ErrNotFound(err, "residency",
				dto.NeighborhoodLabel(name, city, state)+" does not exist.")
		}
		return nil, apperrors.InternalError(err)
	}

	residency := &models.CertifiedResidency{
		UserID:         userID,
		NeighborhoodID: neighborhood.ID,
	}
	if err := s.residencyRepo.Create(db, residency); err != nil {
		if apperrors.Is(err, repositories.ErrResidencyAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err, "residency",
				"You are already a certified resident of "+dto.NeighborhoodLabel(name, city, state)+".")
		}
		return nil, apperrors.InternalError(err)
	}

	created, err := s.residencyRepo.FindByID(db, residency.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("residency certified", "residency_id", residency.ID,
		"user_id", userID, "neighborhood_id", neighborhood.ID)

	response := dto.NewResidencyResponse(created)
	return &response, nil
}

// IsCertified answers whether the named user is a certified resident of the
// neighborhood. Unknown users and neighborhoods read as false, not 404.
func (s *ResidencyService) IsCertified(db *gorm.DB, username, neighborhoodID string) (bool, error) {
	user, err := s.userRepo.FindByUsername(db, username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return false, nil
		}
		return false, apperrors.InternalError(err)
	}

	_, err = s.residencyRepo.FindByUserAndNeighborhood(db, user.ID, neighborhoodID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrResidencyNotFound) {
			return false, nil
		}
		return false, apperrors.InternalError(err)
	}
	return true, nil
}

func (s *ResidencyService) GetAllByUser(db *gorm.DB, username string) ([]dto.ResidencyResponse, error) {
	user, err := s.userRepo.FindByUsername(db, username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "residency", "That user does not exist.")
		}
		return nil, apperrors.InternalError(err)
	}

	residencies, err := s.residencyRepo.FindAllByUser(db, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewResidencyResponses(residencies), nil
}

func (s *ResidencyService) GetAllByNeighborhood(db *gorm.DB, query dto.NeighborhoodQuery) ([]dto.ResidencyResponse, error) {
	name, city, state := normalizeIdentity(query.Name, query.City, query.State)
	neighborhood, err := s.neighborhoodRepo.FindByIdentity(db, name, city, state)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNeighborhoodNotFound) {
			return nil, apperrors.ErrNotFound(err, "residency",
				dto.NeighborhoodLabel(name, city, state)+" does not exist.")
		}
		return nil, apperrors.InternalError(err)
	}

	residencies, err := s.residencyRepo.FindAllByNeighborhood(db, neighborhood.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewResidencyResponses(residencies), nil
}

// Revoke removes a certification. Only its owner may revoke it.
func (s *ResidencyService) Revoke(db *gorm.DB, actorID, residencyID string) error {
	residency, err := s.residencyRepo.FindByID(db, residencyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrResidencyNotFound) {
			return apperrors.ErrNotFound(err, "residency", "That certification does not exist.")
		}
		return apperrors.InternalError(err)
	}

	if residency.UserID != actorID {
		return apperrors.ErrNotOwner("residency", "You may only revoke your own certifications.")
	}

	if err := s.residencyRepo.DeleteByID(db, residencyID); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("residency revoked", "residency_id", residencyID, "user_id", actorID)
	return nil
}
