package models

import "time"

const (
	ReviewContentMaxLen = 4096
	ReviewRatingMin     = 1
	ReviewRatingMax     = 5
)

type Review struct {
	BaseModel
	AuthorID       string    `gorm:"type:uuid;not null;index" json:"authorId"`
	NeighborhoodID string    `gorm:"type:uuid;not null;index" json:"neighborhoodId"`
	Rating         int       `gorm:"not null" json:"rating"`
	Content        string    `gorm:"not null" json:"content"`
	DateCreated    time.Time `gorm:"not null" json:"dateCreated"`

	Author       *User         `gorm:"foreignKey:AuthorID" json:"-"`
	Neighborhood *Neighborhood `gorm:"foreignKey:NeighborhoodID" json:"-"`
}
