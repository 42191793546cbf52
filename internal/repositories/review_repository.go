package repositories

import (
	"errors"

	"nbhd_backend/internal/models"

	"gorm.io/gorm"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.Review) error
	FindByID(db *gorm.DB, id string) (*models.Review, error)
	FindAllByNeighborhood(db *gorm.DB, neighborhoodID string) ([]models.Review, error)
	FindAllByAuthor(db *gorm.DB, authorID string) ([]models.Review, error)
	DeleteByID(db *gorm.DB, id string) error
	DeleteAllByNeighborhood(db *gorm.DB, neighborhoodID string) (int64, error)
	DeleteAllByAuthor(db *gorm.DB, authorID string) (int64, error)
}

type reviewRepository struct{}

func NewReviewRepository() ReviewRepository {
	return &reviewRepository{}
}

func (r *reviewRepository) Create(db *gorm.DB, review *models.Review) error {
	return db.Create(review).Error
}

func (r *reviewRepository) FindByID(db *gorm.DB, id string) (*models.Review, error) {
	var review models.Review
	err := db.Preload("Author").Preload("Neighborhood").
		First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindAllByNeighborhood(db *gorm.DB, neighborhoodID string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Preload("Author").Preload("Neighborhood").
		Where("neighborhood_id = ?", neighborhoodID).
		Order("date_created DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) FindAllByAuthor(db *gorm.DB, authorID string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Preload("Author").Preload("Neighborhood").
		Where("author_id = ?", authorID).
		Order("date_created DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) DeleteByID(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func (r *reviewRepository) DeleteAllByNeighborhood(db *gorm.DB, neighborhoodID string) (int64, error) {
	result := db.Where("neighborhood_id = ?", neighborhoodID).Delete(&models.Review{})
	return result.RowsAffected, result.Error
}

func (r *reviewRepository) DeleteAllByAuthor(db *gorm.DB, authorID string) (int64, error) {
	result := db.Where("author_id = ?", authorID).Delete(&models.Review{})
	return result.RowsAffected, result.Error
}
