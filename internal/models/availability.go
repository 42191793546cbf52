package models

import "time"

// Availability is a resident-offered interview slot. A user may not offer two
// slots at the same instant; uniqueness is per-user, not per-neighborhood.
type Availability struct {
	BaseModel
	UserID         string    `gorm:"type:uuid;not null;uniqueIndex:idx_availability_slot;index" json:"userId"`
	NeighborhoodID string    `gorm:"type:uuid;not null;index" json:"neighborhoodId"`
	VibeLink       string    `gorm:"not null" json:"vibeLink"`
	DateTime       time.Time `gorm:"not null;uniqueIndex:idx_availability_slot" json:"dateTime"`

	User         *User         `gorm:"foreignKey:UserID" json:"-"`
	Neighborhood *Neighborhood `gorm:"foreignKey:NeighborhoodID" json:"-"`
}
