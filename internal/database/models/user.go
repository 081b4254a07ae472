package models

type User struct {
	Base
	FirstName    string `gorm:"not null" json:"first_name"`
	LastName     string `gorm:"not null" json:"last_name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Phone        string `json:"phone"`

	// Relationships
	Organisations []*Organisation `gorm:"many2many:memberships" json:"-"`
}

func (User) TableName() string {
	return "users"
}
