package repositories

import (
	"errors"

	"nbhd_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrResidencyNotFound      = errors.New("certified residency not found")
	ErrResidencyAlreadyExists = errors.New("user is already a resident of this neighborhood")
)

type ResidencyRepository interface {
	Create(db *gorm.DB, residency *models.CertifiedResidency) error
	FindByID(db *gorm.DB, id string) (*models.CertifiedResidency, error)
	FindByUserAndNeighborhood(db *gorm.DB, userID, neighborhoodID string) (*models.CertifiedResidency, error)
	FindAllByUser(db *gorm.DB, userID string) ([]models.CertifiedResidency, error)
	FindAllByNeighborhood(db *gorm.DB, neighborhoodID string) ([]models.CertifiedResidency, error)
	DeleteByID(db *gorm.DB, id string) error
	DeleteAllByNeighborhood(db *gorm.DB, neighborhoodID string) (int64, error)
	DeleteAllByUser(db *gorm.DB, userID string) (int64, error)
}

type residencyRepository struct{}

func NewResidencyRepository() ResidencyRepository {
	return &residencyRepository{}
}

func (r *residencyRepository) Create(db *gorm.DB, residency *models.CertifiedResidency) error {
	err := db.Create(residency).Error
	if err != nil && isUniqueViolation(err) {
		return ErrResidencyAlreadyExists
	}
	return err
}

func (r *residencyRepository) FindByID(db *gorm.DB, id string) (*models.CertifiedResidency, error) {
	var residency models.CertifiedResidency
	err := db.Preload("User").Preload("Neighborhood").
		First(&residency, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResidencyNotFound
		}
		return nil, err
	}
	return &residency, nil
}

func (r *residencyRepository) FindByUserAndNeighborhood(db *gorm.DB, userID, neighborhoodID string) (*models.CertifiedResidency, error) {
	var residency models.CertifiedResidency
	err := db.First(&residency, "user_id = ? AND neighborhood_id = ?", userID, neighborhoodID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResidencyNotFound
		}
		return nil, err
	}
	return &residency, nil
}

func (r *residencyRepository) FindAllByUser(db *gorm.DB, userID string) ([]models.CertifiedResidency, error) {
	var residencies []models.CertifiedResidency
	err := db.Preload("User").Preload("Neighborhood").
		Where("user_id = ?", userID).
		Find(&residencies).Error
	return residencies, err
}

func (r *residencyRepository) FindAllByNeighborhood(db *gorm.DB, neighborhoodID string) ([]models.CertifiedResidency, error) {
	var residencies []models.CertifiedResidency
	err := db.Preload("User").Preload("Neighborhood").
		Where("neighborhood_id = ?", neighborhoodID).
		Find(&residencies).Error
	return residencies, err
}

func (r *residencyRepository) DeleteByID(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.CertifiedResidency{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrResidencyNotFound
	}
	return nil
}

func (r *residencyRepository) DeleteAllByNeighborhood(db *gorm.DB, neighborhoodID string) (int64, error) {
	result := db.Where("neighborhood_id = ?", neighborhoodID).Delete(&models.CertifiedResidency{})
	return result.RowsAffected, result.Error
}

func (r *residencyRepository) DeleteAllByUser(db *gorm.DB, userID string) (int64, error) {
	result := db.Where("user_id = ?", userID).Delete(&models.CertifiedResidency{})
	return result.RowsAffected, result.Error
}
