package models

import "github.com/google/uuid"

type Organisation struct {
	Base
	Name        string     `gorm:"not null" json:"name"`
	Description string     `json:"description"`
	OwnerID     *uuid.UUID `gorm:"type:uuid;index" json:"owner_id,omitempty"`

	// Relationships
	Users []*User `gorm:"many2many:memberships" json:"-"`
}

func (Organisation) TableName() string {
	return "organisations"
}

// Membership is the junction row between users and organisations. The
// relation lives here and only here; entities carry no back-pointers.
type Membership struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganisationID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (Membership) TableName() string {
	return "memberships"
}
