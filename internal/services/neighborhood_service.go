package services

import (
	"strings"

	"nbhd_backend/internal/logger"
	"nbhd_backend/internal/metrics"
	"nbhd_backend/internal/models"
	"nbhd_backend/internal/repositories"
	"nbhd_backend/internal/services/dto"
	"nbhd_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type NeighborhoodService struct {
	neighborhoodRepo repositories.NeighborhoodRepository
	reviewRepo       repositories.ReviewRepository
	strollRepo       repositories.StrollRepository
	residencyRepo    repositories.ResidencyRepository
	availabilityRepo repositories.AvailabilityRepository
	vibeCheckRepo    repositories.VibeCheckRepository
}

func NewNeighborhoodService(
	neighborhoodRepo repositories.NeighborhoodRepository,
	reviewRepo repositories.ReviewRepository,
	strollRepo repositories.StrollRepository,
	residencyRepo repositories.ResidencyRepository,
	availabilityRepo repositories.AvailabilityRepository,
	vibeCheckRepo repositories.VibeCheckRepository,
) *NeighborhoodService {
	return &NeighborhoodService{
		neighborhoodRepo: neighborhoodRepo,
		reviewRepo:       reviewRepo,
		strollRepo:       strollRepo,
		residencyRepo:    residencyRepo,
		availabilityRepo: availabilityRepo,
		vibeCheckRepo:    vibeCheckRepo,
	}
}

// normalizeIdentity lowercases the natural key so "Hyde_Park" and "hyde_park"
// address the same record. Display casing is restored by dto.FormatWord.
func normalizeIdentity(name, city, state string) (string, string, string) {
	return strings.ToLower(name), strings.ToLower(city), strings.ToLower(state)
}

func (s *NeighborhoodService) GetAll(db *gorm.DB) ([]dto.NeighborhoodResponse, error) {
	neighborhoods, err := s.neighborhoodRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewNeighborhoodResponses(neighborhoods), nil
}

func (s *NeighborhoodService) GetByIdentity(db *gorm.DB, query dto.NeighborhoodQuery) (*dto.NeighborhoodResponse, error) {
	name, city, state := normalizeIdentity(query.Name, query.City, query.State)
	neighborhood, err := s.findByIdentity(db, name, city, state)
	if err != nil {
		return nil, err
	}
	response := dto.NewNeighborhoodResponse(neighborhood)
	return &response, nil
}

func (s *NeighborhoodService) GetAllByLocation(db *gorm.DB, query dto.LocationQuery) ([]dto.NeighborhoodResponse, error) {
	city := strings.ToLower(query.City)
	state := strings.ToLower(query.State)
	neighborhoods, err := s.neighborhoodRepo.FindAllByLocation(db, city, state)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewNeighborhoodResponses(neighborhoods), nil
}

func (s *NeighborhoodService) GetAllInBox(db *gorm.DB, query dto.BoxQuery) ([]dto.NeighborhoodResponse, error) {
	if *query.Lat1 >= *query.Lat2 {
		return nil, apperrors.ErrInvalidOperation("neighborhood", "lat1 must be strictly less than lat2.")
	}
	if *query.Long1 >= *query.Long2 {
		return nil, apperrors.ErrInvalidOperation("neighborhood", "long1 must be strictly less than long2.")
	}

	neighborhoods, err := s.neighborhoodRepo.FindAllInBox(db, *query.Lat1, *query.Long1, *query.Lat2, *query.Long2)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewNeighborhoodResponses(neighborhoods), nil
}

func (s *NeighborhoodService) Create(db *gorm.DB, req dto.CreateNeighborhoodRequest) (*dto.NeighborhoodResponse, error) {
	name, city, state := normalizeIdentity(req.Name, req.City, req.State)

	neighborhood := &models.Neighborhood{
		Name:         name,
		City:         city,
		State:        state,
		Latitude:     *req.Latitude,
		Longitude:    *req.Longitude,
		CrimeRate:    *req.CrimeRate,
		AveragePrice: *req.AveragePrice,
		AverageAge:   *req.AverageAge,
	}

	if err := s.neighborhoodRepo.Create(db, neighborhood); err != nil {
		if apperrors.Is(err, repositories.ErrNeighborhoodAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err, "neighborhood",
				dto.NeighborhoodLabel(name, city, state)+" already exists.")
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("neighborhood created", "neighborhood_id", neighborhood.ID,
		"name", name, "city", city, "state", state)

	response := dto.NewNeighborhoodResponse(neighborhood)
	return &response, nil
}

func (s *NeighborhoodService) Update(db *gorm.DB, query dto.NeighborhoodQuery, req dto.UpdateNeighborhoodRequest) (*dto.NeighborhoodResponse, error) {
	name, city, state := normalizeIdentity(query.Name, query.City, query.State)
	neighborhood, err := s.findByIdentity(db, name, city, state)
	if err != nil {
		return nil, err
	}

	updated, err := s.neighborhoodRepo.Update(db, neighborhood.ID, repositories.NeighborhoodUpdate{
		CrimeRate:    req.CrimeRate,
		AveragePrice: req.AveragePrice,
		AverageAge:   req.AverageAge,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	response := dto.NewNeighborhoodResponse(updated)
	return &response, nil
}

// Delete removes the neighborhood and every record hanging off it: reviews,
// residencies, strolls, and availabilities together with the vibe checks
// booked against them. One transaction, so a failure midway leaves the
// neighborhood intact.
func (s *NeighborhoodService) Delete(db *gorm.DB, query dto.NeighborhoodQuery) error {
	name, city, state := normalizeIdentity(query.Name, query.City, query.State)
	neighborhood, err := s.findByIdentity(db, name, city, state)
	if err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		reviews, err := s.reviewRepo.DeleteAllByNeighborhood(tx, neighborhood.ID)
		if err != nil {
			return err
		}
		residencies, err := s.residencyRepo.DeleteAllByNeighborhood(tx, neighborhood.ID)
		if err != nil {
			return err
		}
		strolls, err := s.strollRepo.DeleteAllByNeighborhood(tx, neighborhood.ID)
		if err != nil {
			return err
		}

		availabilities, err := s.availabilityRepo.FindAllByNeighborhood(tx, neighborhood.ID)
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
		if _, err := s.availabilityRepo.DeleteAllByIDs(tx, availabilityIDs); err != nil {
			return err
		}

		if err := s.neighborhoodRepo.DeleteByID(tx, neighborhood.ID); err != nil {
			return err
		}

		metrics.DeletedRecords.WithLabelValues("review").Add(float64(reviews))
		metrics.DeletedRecords.WithLabelValues("residency").Add(float64(residencies))
		metrics.DeletedRecords.WithLabelValues("stroll").Add(float64(strolls))
		metrics.DeletedRecords.WithLabelValues("availability").Add(float64(len(availabilityIDs)))
		metrics.DeletedRecords.WithLabelValues("vibe_check").Add(float64(vibeChecks))
		return nil
	})
	if err != nil {
		return apperrors.InternalError(err)
	}

	metrics.CascadeDeletes.WithLabelValues("neighborhood").Inc()
	logger.Info("neighborhood deleted", "neighborhood_id", neighborhood.ID,
		"name", name, "city", city, "state", state)
	return nil
}

func (s *NeighborhoodService) findByIdentity(db *gorm.DB, name, city, state string) (*models.Neighborhood, error) {
	neighborhood, err := s.neighborhoodRepo.FindByIdentity(db, name, city, state)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNeighborhoodNotFound) {
			return nil, apperrors.ErrNotFound(err, "neighborhood",
				dto.NeighborhoodLabel(name, city, state)+" does not exist.")
		}
		return nil, apperrors.InternalError(err)
	}
	return neighborhood, nil
}
