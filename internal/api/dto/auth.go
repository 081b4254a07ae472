package dto

import (
	"strings"

	"github.com/hugh/orgspace/internal/database/models"
)

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone,omitempty"`
}

// Validate reports the first missing field in the documented order:
// firstName, lastName, email, password. One field per response.
func (r RegisterRequest) Validate() *FieldError {
	if strings.TrimSpace(r.FirstName) == "" {
		return &FieldError{Field: "firstName", Message: "First name is required"}
	}
	if strings.TrimSpace(r.LastName) == "" {
		return &FieldError{Field: "lastName", Message: "Last name is required"}
	}
	if strings.TrimSpace(r.Email) == "" {
		return &FieldError{Field: "email", Message: "Email is required"}
	}
	if strings.TrimSpace(r.Password) == "" {
		return &FieldError{Field: "password", Message: "password required"}
	}
	return nil
}

// LoginRequest uses pointers so an absent key is distinguishable from an
// empty value; login rejects absent keys outright.
type LoginRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (r LoginRequest) Complete() bool {
	return r.Email != nil && r.Password != nil
}

type AuthData struct {
	AccessToken string  `json:"accessToken"`
	User        UserDTO `json:"user"`
}

// UserDTO is the public profile; it never carries the password digest.
type UserDTO struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func NewUserDTO(u *models.User) UserDTO {
	return UserDTO{
		UserID:    u.ID.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
	}
}
