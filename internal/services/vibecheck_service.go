package services

import (
	"time"

	"nbhd_backend/internal/logger"
	"nbhd_backend/internal/metrics"
	"nbhd_backend/internal/models"
	"nbhd_backend/internal/repositories"
	"nbhd_backend/internal/services/dto"
	"nbhd_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type VibeCheckService struct {
	availabilityRepo repositories.AvailabilityRepository
	vibeCheckRepo    repositories.VibeCheckRepository
	neighborhoodRepo repositories.NeighborhoodRepository
}

func NewVibeCheckService(
	availabilityRepo repositories.AvailabilityRepository,
	vibeCheckRepo repositories.VibeCheckRepository,
	neighborhoodRepo repositories.NeighborhoodRepository,
) *VibeCheckService {
	return &VibeCheckService{
		availabilityRepo: availabilityRepo,
		vibeCheckRepo:    vibeCheckRepo,
		neighborhoodRepo: neighborhoodRepo,
	}
}

// CreateAvailability offers an interview slot. A user may not hold two slots
// at the same instant, regardless of neighborhood; the duplicate answers 409.
func (s *VibeCheckService) CreateAvailability(db *gorm.DB, userID string, req dto.CreateAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	dateTime, err := time.Parse(time.RFC3339, req.DateTime)
	if err != nil {
		return nil, apperrors.ErrInvalidOperation("availability",
			"dateTime must be an RFC 3339 timestamp, e.g. 2026-06-01T10:00:00Z.")
	}

	name, city, state := normalizeIdentity(req.Name, req.City, req.State)
	neighborhood, err := s.neighborhoodRepo.FindByIdentity(db, name, city, state)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNeighborhoodNotFound) {
			return nil, apperrors.ErrNotFound(err, "availability",
				dto.NeighborhoodLabel(name, city, state)+" does not exist.")
		}
		return nil, apperrors.InternalError(err)
	}

	// Friendly pre-check; the unique index on (user_id, date_time) is the
	// backstop for concurrent creates.
	if _, err := s.availabilityRepo.FindByUserAndDateTime(db, userID, dateTime.UTC()); err == nil {
		return nil, apperrors.ErrConflict("availability",
			"You already offer an availability at that date and time.")
	} else if !apperrors.Is(err, repositories.ErrAvailabilityNotFound) {
		return nil, apperrors.InternalError(err)
	}

	availability := &models.Availability{
		UserID:         userID,
		NeighborhoodID: neighborhood.ID,
		VibeLink:       req.VibeLink,
		DateTime:       dateTime.UTC(),
	}
	if err := s.availabilityRepo.Create(db, availability); err != nil {
		if apperrors.Is(err, repositories.ErrAvailabilityTaken) {
			return nil, apperrors.ErrAlreadyExists(err, "availability",
				"You already offer an availability at that date and time.")
		}
		return nil, apperrors.InternalError(err)
	}

	created, err := s.availabilityRepo.FindByID(db, availability.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("availability created", "availability_id", availability.ID,
		"user_id", userID, "neighborhood_id", neighborhood.ID)

	response := dto.NewAvailabilityResponse(created)
	return &response, nil
}

func (s *VibeCheckService) GetMyAvailabilities(db *gorm.DB, userID string) ([]dto.AvailabilityResponse, error) {
	availabilities, err := s.availabilityRepo.FindAllByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewAvailabilityResponses(availabilities), nil
}

// GetAvailabilitiesByNeighborhood lists slots open in a neighborhood, leaving
// out the caller's own since booking yourself is rejected anyway.
func (s *VibeCheckService) GetAvailabilitiesByNeighborhood(db *gorm.DB, userID, neighborhoodID string) ([]dto.AvailabilityResponse, error) {
	if _, err := s.neighborhoodRepo.FindByID(db, neighborhoodID); err != nil {
		if apperrors.Is(err, repositories.ErrNeighborhoodNotFound) {
			return nil, apperrors.ErrNotFound(err, "availability", "That neighborhood does not exist.")
		}
		return nil, apperrors.InternalError(err)
	}

	availabilities, err := s.availabilityRepo.FindAllByNeighborhood(db, neighborhoodID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	others := availabilities[:0]
	for _, a := range availabilities {
		if a.UserID != userID {
			others = append(others, a)
		}
	}
	return dto.NewAvailabilityResponses(others), nil
}

// DeleteAvailability withdraws a slot and cancels every vibe check booked
// against it, in one transaction. Only the offering resident may withdraw.
func (s *VibeCheckService) DeleteAvailability(db *gorm.DB, actorID, availabilityID string) error {
	availability, err := s.availabilityRepo.FindByID(db, availabilityID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAvailabilityNotFound) {
			return apperrors.ErrNotFound(err, "availability", "That availability does not exist.")
		}
		return apperrors.InternalError(err)
	}

	if availability.UserID != actorID {
		return apperrors.ErrNotOwner("availability", "You may only withdraw your own availabilities.")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		vibeChecks, err := s.vibeCheckRepo.DeleteAllByAvailabilityIDs(tx, []string{availabilityID})
		if err != nil {
			return err
		}
		if err := s.availabilityRepo.DeleteByID(tx, availabilityID); err != nil {
			return err
		}
		metrics.DeletedRecords.WithLabelValues("vibe_check").Add(float64(vibeChecks))
		metrics.DeletedRecords.WithLabelValues("availability").Inc()
		return nil
	})
	if err != nil {
		return apperrors.InternalError(err)
	}

	metrics.CascadeDeletes.WithLabelValues("availability").Inc()
	logger.Info("availability withdrawn", "availability_id", availabilityID, "user_id", actorID)
	return nil
}

// CreateVibeCheck books a slot. Booking your own availability answers 409.
func (s *VibeCheckService) CreateVibeCheck(db *gorm.DB, userID string, req dto.CreateVibeCheckRequest) (*dto.VibeCheckResponse, error) {
	availability, err := s.availabilityRepo.FindByID(db, req.AvailabilityID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAvailabilityNotFound) {
			return nil, apperrors.ErrNotFound(err, "vibe_check", "That availability does not exist.")
		}
		return nil, apperrors.InternalError(err)
	}

	if availability.UserID == userID {
		return nil, apperrors.ErrConflict("vibe_check", "You cannot book a vibe check with yourself.")
	}

	vibeCheck := &models.VibeCheck{
		UserID:         userID,
		ResidentID:     availability.UserID,
		AvailabilityID: availability.ID,
	}
	if err := s.vibeCheckRepo.Create(db, vibeCheck); err != nil {
		return nil, apperrors.InternalError(err)
	}

	created, err := s.vibeCheckRepo.FindByID(db, vibeCheck.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("vibe check booked", "vibe_check_id", vibeCheck.ID,
		"user_id", userID, "resident_id", availability.UserID)

	response := dto.NewVibeCheckResponse(created)
	return &response, nil
}

// GetMyVibeChecks lists vibe checks where the user is either side of the
// interview.
func (s *VibeCheckService) GetMyVibeChecks(db *gorm.DB, userID string) ([]dto.VibeCheckResponse, error) {
	vibeChecks, err := s.vibeCheckRepo.FindAllForUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewVibeCheckResponses(vibeChecks), nil
}

// DeleteVibeCheck cancels a booking. Either participant may cancel.
func (s *VibeCheckService) DeleteVibeCheck(db *gorm.DB, actorID, vibeCheckID string) error {
	vibeCheck, err := s.vibeCheckRepo.FindByID(db, vibeCheckID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrVibeCheckNotFound) {
			return apperrors.ErrNotFound(err, "vibe_check", "That vibe check does not exist.")
		}
		return apperrors.InternalError(err)
	}

	if vibeCheck.UserID != actorID && vibeCheck.ResidentID != actorID {
		return apperrors.ErrNotOwner("vibe_check", "You may only cancel vibe checks you take part in.")
	}

	if err := s.vibeCheckRepo.DeleteByID(db, vibeCheckID); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("vibe check cancelled", "vibe_check_id", vibeCheckID, "user_id", actorID)
	return nil
}
