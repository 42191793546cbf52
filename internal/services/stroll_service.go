package services

import (
	"time"

	"nbhd_backend/internal/logger"
	"nbhd_backend/internal/models"
	"nbhd_backend/internal/repositories"
	"nbhd_backend/internal/services/dto"
	"nbhd_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type StrollService struct {
	strollRepo       repositories.StrollRepository
	neighborhoodRepo repositories.NeighborhoodRepository
}

func NewStrollService(
	strollRepo repositories.StrollRepository,
	neighborhoodRepo repositories.NeighborhoodRepository,
) *StrollService {
	return &StrollService{
		strollRepo:       strollRepo,
		neighborhoodRepo: neighborhoodRepo,
	}
}

// Create uploads a stroll for a neighborhood addressed by its natural key.
func (s *StrollService) Create(db *gorm.DB, authorID string, req dto.CreateStrollRequest) (*dto.StrollResponse, error) {
	name, city, state := normalizeIdentity(req.Name, req.City, req.State)
	neighborhood, err := s.neighborhoodRepo.FindByIdentity(db, name, city, state)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNeighborhoodNotFound) {
			return nil, apperrors.ErrNotFound(err, "stroll",
				dto.NeighborhoodLabel(name, city, state)+" does not exist.")
		}
		return nil, apperrors.InternalError(err)
	}

	stroll := &models.Stroll{
		AuthorID:       authorID,
		NeighborhoodID: neighborhood.ID,
		Title:          req.Title,
		StrollVideo:    req.StrollVideo,
		DateUploaded:   time.Now(),
	}
	if err := s.strollRepo.Create(db, stroll); err != nil {
		return nil, apperrors.InternalError(err)
	}

	created, err := s.strollRepo.FindByID(db, stroll.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("stroll created", "stroll_id", stroll.ID,
		"author_id", authorID, "neighborhood_id", neighborhood.ID)

	response := dto.NewStrollResponse(created)
	return &response, nil
}

func (s *StrollService) GetAllByAuthor(db *gorm.DB, authorID string) ([]dto.StrollResponse, error) {
	strolls, err := s.strollRepo.FindAllByAuthor(db, authorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewStrollResponses(strolls), nil
}

func (s *StrollService) GetAllByNeighborhood(db *gorm.DB, neighborhoodID string) ([]dto.StrollResponse, error) {
	if _, err := s.neighborhoodRepo.FindByID(db, neighborhoodID); err != nil {
		if apperrors.Is(err, repositories.ErrNeighborhoodNotFound) {
			return nil, apperrors.ErrNotFound(err, "stroll", "That neighborhood does not exist.")
		}
		return nil, apperrors.InternalError(err)
	}

	strolls, err := s.strollRepo.FindAllByNeighborhood(db, neighborhoodID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewStrollResponses(strolls), nil
}

// Delete removes a stroll. Only the author may delete it.
func (s *StrollService) Delete(db *gorm.DB, actorID, strollID string) error {
	stroll, err := s.strollRepo.FindByID(db, strollID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrStrollNotFound) {
			return apperrors.ErrNotFound(err, "stroll", "That stroll does not exist.")
		}
		return apperrors.InternalError(err)
	}

	if stroll.AuthorID != actorID {
		return apperrors.ErrNotOwner("stroll", "You may only delete your own strolls.")
	}

	if err := s.strollRepo.DeleteByID(db, strollID); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("stroll deleted", "stroll_id", strollID, "author_id", actorID)
	return nil
}
