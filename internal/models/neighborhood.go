package models

// Neighborhood identity is the (name, city, state) tuple. The composite
// unique index backs the 409 pre-check so concurrent creates cannot both land.
type Neighborhood struct {
	BaseModel
	Name         string  `gorm:"not null;uniqueIndex:idx_neighborhood_identity" json:"name"`
	City         string  `gorm:"not null;uniqueIndex:idx_neighborhood_identity" json:"city"`
	State        string  `gorm:"not null;uniqueIndex:idx_neighborhood_identity" json:"state"`
	Latitude     float64 `gorm:"not null" json:"latitude"`
	Longitude    float64 `gorm:"not null" json:"longitude"`
	CrimeRate    float64 `gorm:"not null" json:"crimeRate"`
	AveragePrice float64 `gorm:"not null" json:"averagePrice"`
	AverageAge   float64 `gorm:"not null" json:"averageAge"`
}
