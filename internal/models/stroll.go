package models

import "time"

// Stroll is a user-submitted walkthrough video for a neighborhood. The video
// itself lives elsewhere; StrollVideo is an opaque link.
type Stroll struct {
	BaseModel
	AuthorID       string    `gorm:"type:uuid;not null;index" json:"authorId"`
	NeighborhoodID string    `gorm:"type:uuid;not null;index" json:"neighborhoodId"`
	Title          string    `gorm:"not null" json:"title"`
	StrollVideo    string    `gorm:"not null" json:"strollVideo"`
	DateUploaded   time.Time `gorm:"not null" json:"dateUploaded"`

	Author       *User         `gorm:"foreignKey:AuthorID" json:"-"`
	Neighborhood *Neighborhood `gorm:"foreignKey:NeighborhoodID" json:"-"`
}
