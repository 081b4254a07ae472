package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/hugh/orgspace/internal/database/models"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthorized      = errors.New("not authorized")
)

type Service struct {
	db  *gorm.DB
	jwt *JWTService
}

func NewService(db *gorm.DB, jwt *JWTService) *Service {
	return &Service{db: db, jwt: jwt}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResponse struct {
	Token string
	User  *models.User
	Org   *models.Organisation
}

// Register creates a user together with its default organisation. The
// two rows and the membership between them land in one transaction or
// not at all.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	email := strings.TrimSpace(input.Email)

	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrUserExists
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		PasswordHash: hash,
		Phone:        input.Phone,
	}

	org := models.Organisation{
		Name: user.FirstName + "'s organisation",
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		org.OwnerID = &user.ID
		if err := tx.Create(&org).Error; err != nil {
			return err
		}

		return tx.Create(&models.Membership{
			UserID:         user.ID,
			OrganisationID: org.ID,
		}).Error
	})

	if err != nil {
		// A racing registration can slip past the pre-check; the store's
		// uniqueness constraint is the arbiter and maps to the same error.
		if isUniqueViolation(err) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, User: &user, Org: &org}, nil
}

func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResponse, error) {
	var user models.User
	if err := s.db.WithContext(ctx).
		Where("email = ?", input.Email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPassword(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, User: &user}, nil
}

func (s *Service) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FetchUser returns the target user's record if the caller may see it.
// Self-reads always pass; everything else requires the two users to
// share at least one organisation.
func (s *Service) FetchUser(ctx context.Context, callerID, targetID uuid.UUID) (*models.User, error) {
	caller, err := s.GetUserByID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	if callerID == targetID {
		return caller, nil
	}

	target, err := s.GetUserByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	shared, err := s.shareOrganisation(ctx, callerID, targetID)
	if err != nil {
		return nil, err
	}
	if !shared {
		return nil, ErrNotAuthorized
	}

	return target, nil
}

// DeleteUser removes the user and every organisation it owns. Membership
// rows the user holds in organisations owned by others are left behind.
func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owned []models.Organisation
		if err := tx.Where("owner_id = ?", id).Find(&owned).Error; err != nil {
			return err
		}

		for _, o := range owned {
			if err := tx.Where("organisation_id = ?", o.ID).
				Delete(&models.Membership{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&o).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.User{}, "id = ?", id).Error
	})
}

// shareOrganisation reports whether both users appear in at least one
// common membership row. Order of the two arguments does not matter.
func (s *Service) shareOrganisation(ctx context.Context, a, b uuid.UUID) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Table("memberships m1").
		Joins("JOIN memberships m2 ON m1.organisation_id = m2.organisation_id").
		Where("m1.user_id = ? AND m2.user_id = ?", a, b).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// isUniqueViolation detects a uniqueness constraint violation surfaced
// by the store (PostgreSQL 23505, or SQLite's phrasing in tests).
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	type sqlStater interface{ SQLState() string }
	var pgErr sqlStater
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
