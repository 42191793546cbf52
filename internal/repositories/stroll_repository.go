package repositories

import (
	"errors"

	"nbhd_backend/internal/models"

	"gorm.io/gorm"
)

var ErrStrollNotFound = errors.New("stroll not found")

type StrollRepository interface {
	Create(db *gorm.DB, stroll *models.Stroll) error
	FindByID(db *gorm.DB, id string) (*models.Stroll, error)
	FindAllByNeighborhood(db *gorm.DB, neighborhoodID string) ([]models.Stroll, error)
	FindAllByAuthor(db *gorm.DB, authorID string) ([]models.Stroll, error)
	DeleteByID(db *gorm.DB, id string) error
	DeleteAllByNeighborhood(db *gorm.DB, neighborhoodID string) (int64, error)
	DeleteAllByAuthor(db *gorm.DB, authorID string) (int64, error)
}

type strollRepository struct{}

func NewStrollRepository() StrollRepository {
	return &strollRepository{}
}

func (r *strollRepository) Create(db *gorm.DB, stroll *models.Stroll) error {
	return db.Create(stroll).Error
}

func (r *strollRepository) FindByID(db *gorm.DB, id string) (*models.Stroll, error) {
	var stroll models.Stroll
	err := db.Preload("Author").Preload("Neighborhood").
		First(&stroll, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStrollNotFound
		}
		return nil, err
	}
	return &stroll, nil
}

func (r *strollRepository) FindAllByNeighborhood(db *gorm.DB, neighborhoodID string) ([]models.Stroll, error) {
	var strolls []models.Stroll
	err := db.Preload("Author").Preload("Neighborhood").
		Where("neighborhood_id = ?", neighborhoodID).
		Order("date_uploaded DESC").
		Find(&strolls).Error
	return strolls, err
}

func (r *strollRepository) FindAllByAuthor(db *gorm.DB, authorID string) ([]models.Stroll, error) {
	var strolls []models.Stroll
	err := db.Preload("Author").Preload("Neighborhood").
		Where("author_id = ?", authorID).
		Order("date_uploaded DESC").
		Find(&strolls).Error
	return strolls, err
}

func (r *strollRepository) DeleteByID(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Stroll{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStrollNotFound
	}
	return nil
}

func (r *strollRepository) DeleteAllByNeighborhood(db *gorm.DB, neighborhoodID string) (int64, error) {
	result := db.Where("neighborhood_id = ?", neighborhoodID).Delete(&models.Stroll{})
	return result.RowsAffected, result.Error
}

func (r *strollRepository) DeleteAllByAuthor(db *gorm.DB, authorID string) (int64, error) {
	result := db.Where("author_id = ?", authorID).Delete(&models.Stroll{})
	return result.RowsAffected, result.Error
}
