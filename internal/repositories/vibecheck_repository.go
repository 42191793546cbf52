package repositories

import (
	"errors"

	"nbhd_backend/internal/models"

	"gorm.io/gorm"
)

var ErrVibeCheckNotFound = errors.New("vibe check not found")

type VibeCheckRepository interface {
	Create(db *gorm.DB, vibeCheck *models.VibeCheck) error
	FindByID(db *gorm.DB, id string) (*models.VibeCheck, error)
	FindAllForUser(db *gorm.DB, userID string) ([]models.VibeCheck, error)
	DeleteByID(db *gorm.DB, id string) error
	DeleteAllByAvailabilityIDs(db *gorm.DB, availabilityIDs []string) (int64, error)
	DeleteAllForUser(db *gorm.DB, userID string) (int64, error)
}

type vibeCheckRepository struct{}

func NewVibeCheckRepository() VibeCheckRepository {
	return &vibeCheckRepository{}
}

func (r *vibeCheckRepository) Create(db *gorm.DB, vibeCheck *models.VibeCheck) error {
	return db.Create(vibeCheck).Error
}

func (r *vibeCheckRepository) FindByID(db *gorm.DB, id string) (*models.VibeCheck, error) {
	var vibeCheck models.VibeCheck
	err := db.Preload("User").Preload("Resident").Preload("Availability").
		First(&vibeCheck, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVibeCheckNotFound
		}
		return nil, err
	}
	return &vibeCheck, nil
}

// FindAllForUser returns vibe checks where the user is either the requester
// or the hosting resident.
func (r *vibeCheckRepository) FindAllForUser(db *gorm.DB, userID string) ([]models.VibeCheck, error) {
	var vibeChecks []models.VibeCheck
	err := db.Preload("User").Preload("Resident").Preload("Availability").
		Where("user_id = ? OR resident_id = ?", userID, userID).
		Find(&vibeChecks).Error
	return vibeChecks, err
}

func (r *vibeCheckRepository) DeleteByID(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.VibeCheck{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVibeCheckNotFound
	}
	return nil
}

func (r *vibeCheckRepository) DeleteAllByAvailabilityIDs(db *gorm.DB, availabilityIDs []string) (int64, error) {
	if len(availabilityIDs) == 0 {
		return 0, nil
	}
	result := db.Where("availability_id IN ?", availabilityIDs).Delete(&models.VibeCheck{})
	return result.RowsAffected, result.Error
}

func (r *vibeCheckRepository) DeleteAllForUser(db *gorm.DB, userID string) (int64, error) {
	result := db.Where("user_id = ? OR resident_id = ?", userID, userID).Delete(&models.VibeCheck{})
	return result.RowsAffected, result.Error
}
