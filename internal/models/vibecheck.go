package models

// VibeCheck commits a requesting user to a resident's availability. The
// resident id duplicates the availability owner so both sides of an interview
// can be listed without a join fan-out.
type VibeCheck struct {
	BaseModel
	UserID         string `gorm:"type:uuid;not null;index" json:"userId"`
	ResidentID     string `gorm:"type:uuid;not null;index" json:"residentId"`
	AvailabilityID string `gorm:"type:uuid;not null;index" json:"availabilityId"`

	User         *User         `gorm:"foreignKey:UserID" json:"-"`
	Resident     *User         `gorm:"foreignKey:ResidentID" json:"-"`
	Availability *Availability `gorm:"foreignKey:AvailabilityID" json:"-"`
}
