package models

import "time"

type User struct {
	BaseModel
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	DateJoined   time.Time `gorm:"not null" json:"dateJoined"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"isAdmin"`
}
