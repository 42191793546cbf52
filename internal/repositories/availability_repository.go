package repositories

import (
	"errors"
	"time"

	"nbhd_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAvailabilityNotFound = errors.New("availability not found")
	ErrAvailabilityTaken    = errors.New("an availability at this date and time already exists")
)

type AvailabilityRepository interface {
	Create(db *gorm.DB, availability *models.Availability) error
	FindByID(db *gorm.DB, id string) (*models.Availability, error)
	FindByUserAndDateTime(db *gorm.DB, userID string, dateTime time.Time) (*models.Availability, error)
	FindAllByUser(db *gorm.DB, userID string) ([]models.Availability, error)
	FindAllByNeighborhood(db *gorm.DB, neighborhoodID string) ([]models.Availability, error)
	DeleteByID(db *gorm.DB, id string) error
	DeleteAllByUser(db *gorm.DB, userID string) (int64, error)
	DeleteAllByIDs(db *gorm.DB, ids []string) (int64, error)
}

type availabilityRepository struct{}

func NewAvailabilityRepository() AvailabilityRepository {
	return &availabilityRepository{}
}

func (r *availabilityRepository) Create(db *gorm.DB, availability *models.Availability) error {
	err := db.Create(availability).Error
	if err != nil && isUniqueViolation(err) {
		return ErrAvailabilityTaken
	}
	return err
}

func (r *availabilityRepository) FindByID(db *gorm.DB, id string) (*models.Availability, error) {
	var availability models.Availability
	err := db.Preload("User").Preload("Neighborhood").
		First(&availability, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAvailabilityNotFound
		}
		return nil, err
	}
	return &availability, nil
}

func (r *availabilityRepository) FindByUserAndDateTime(db *gorm.DB, userID string, dateTime time.Time) (*models.Availability, error) {
	var availability models.Availability
	err := db.First(&availability, "user_id = ? AND date_time = ?", userID, dateTime).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAvailabilityNotFound
		}
		return nil, err
	}
	return &availability, nil
}

func (r *availabilityRepository) FindAllByUser(db *gorm.DB, userID string) ([]models.Availability, error) {
	var availabilities []models.Availability
	err := db.Preload("User").Preload("Neighborhood").
		Where("user_id = ?", userID).
		Order("date_time ASC").
		Find(&availabilities).Error
	return availabilities, err
}

func (r *availabilityRepository) FindAllByNeighborhood(db *gorm.DB, neighborhoodID string) ([]models.Availability, error) {
	var availabilities []models.Availability
	err := db.Preload("User").Preload("Neighborhood").
		Where("neighborhood_id = ?", neighborhoodID).
		Order("date_time ASC").
		Find(&availabilities).Error
	return availabilities, err
}

func (r *availabilityRepository) DeleteByID(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Availability{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAvailabilityNotFound
	}
	return nil
}

func (r *availabilityRepository) DeleteAllByUser(db *gorm.DB, userID string) (int64, error) {
	result := db.Where("user_id = ?", userID).Delete(&models.Availability{})
	return result.RowsAffected, result.Error
}

func (r *availabilityRepository) DeleteAllByIDs(db *gorm.DB, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := db.Where("id IN ?", ids).Delete(&models.Availability{})
	return result.RowsAffected, result.Error
}
