package models

// CertifiedResidency is the join record asserting a user lives in a
// neighborhood. At most one per (user, neighborhood) pair; the unique index
// is the backstop behind the friendly 409 pre-check.
type CertifiedResidency struct {
	BaseModel
	UserID         string `gorm:"type:uuid;not null;uniqueIndex:idx_residency_pair" json:"userId"`
	NeighborhoodID string `gorm:"type:uuid;not null;uniqueIndex:idx_residency_pair;index" json:"neighborhoodId"`

	User         *User         `gorm:"foreignKey:UserID" json:"-"`
	Neighborhood *Neighborhood `gorm:"foreignKey:NeighborhoodID" json:"-"`
}
