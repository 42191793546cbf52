package repositories

import (
	"errors"

	"nbhd_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrNeighborhoodNotFound      = errors.New("neighborhood not found")
	ErrNeighborhoodAlreadyExists = errors.New("neighborhood already exists")
)

// NeighborhoodUpdate carries the three admin-updatable attributes. Nil means
// leave unchanged.
type NeighborhoodUpdate struct {
	CrimeRate    *float64
	AveragePrice *float64
	AverageAge   *float64
}

type NeighborhoodRepository interface {
	Create(db *gorm.DB, neighborhood *models.Neighborhood) error
	FindByID(db *gorm.DB, id string) (*models.Neighborhood, error)
	FindByIdentity(db *gorm.DB, name, city, state string) (*models.Neighborhood, error)
	FindAll(db *gorm.DB) ([]models.Neighborhood, error)
	FindAllByLocation(db *gorm.DB, city, state string) ([]models.Neighborhood, error)
	FindAllInBox(db *gorm.DB, lat1, long1, lat2, long2 float64) ([]models.Neighborhood, error)
	Update(db *gorm.DB, id string, update NeighborhoodUpdate) (*models.Neighborhood, error)
	DeleteByID(db *gorm.DB, id string) error
}

type neighborhoodRepository struct{}

func NewNeighborhoodRepository() NeighborhoodRepository {
	return &neighborhoodRepository{}
}

func (r *neighborhoodRepository) Create(db *gorm.DB, neighborhood *models.Neighborhood) error {
	err := db.Create(neighborhood).Error
	if err != nil && isUniqueViolation(err) {
		return ErrNeighborhoodAlreadyExists
	}
	return err
}

func (r *neighborhoodRepository) FindByID(db *gorm.DB, id string) (*models.Neighborhood, error) {
	var neighborhood models.Neighborhood
	err := db.First(&neighborhood, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNeighborhoodNotFound
		}
		return nil, err
	}
	return &neighborhood, nil
}

func (r *neighborhoodRepository) FindByIdentity(db *gorm.DB, name, city, state string) (*models.Neighborhood, error) {
	var neighborhood models.Neighborhood
	err := db.First(&neighborhood, "name = ? AND city = ? AND state = ?", name, city, state).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNeighborhoodNotFound
		}
		return nil, err
	}
	return &neighborhood, nil
}

func (r *neighborhoodRepository) FindAll(db *gorm.DB) ([]models.Neighborhood, error) {
	var neighborhoods []models.Neighborhood
	err := db.Order("name ASC").Find(&neighborhoods).Error
	return neighborhoods, err
}

func (r *neighborhoodRepository) FindAllByLocation(db *gorm.DB, city, state string) ([]models.Neighborhood, error) {
	var neighborhoods []models.Neighborhood
	err := db.Where("city = ? AND state = ?", city, state).Order("name ASC").Find(&neighborhoods).Error
	return neighborhoods, err
}

// FindAllInBox returns neighborhoods with lat1 < latitude < lat2 and
// long1 < longitude < long2. Bounds are exclusive.
func (r *neighborhoodRepository) FindAllInBox(db *gorm.DB, lat1, long1, lat2, long2 float64) ([]models.Neighborhood, error) {
	var neighborhoods []models.Neighborhood
	err := db.
		Where("latitude > ? AND latitude < ?", lat1, lat2).
		Where("longitude > ? AND longitude < ?", long1, long2).
		Find(&neighborhoods).Error
	return neighborhoods, err
}

func (r *neighborhoodRepository) Update(db *gorm.DB, id string, update NeighborhoodUpdate) (*models.Neighborhood, error) {
	neighborhood, err := r.FindByID(db, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if update.CrimeRate != nil {
		fields["crime_rate"] = *update.CrimeRate
	}
	if update.AveragePrice != nil {
		fields["average_price"] = *update.AveragePrice
	}
	if update.AverageAge != nil {
		fields["average_age"] = *update.AverageAge
	}

	if len(fields) == 0 {
		return neighborhood, nil
	}

	if err := db.Model(neighborhood).Updates(fields).Error; err != nil {
		return nil, err
	}
	return neighborhood, nil
}

func (r *neighborhoodRepository) DeleteByID(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Neighborhood{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNeighborhoodNotFound
	}
	return nil
}
