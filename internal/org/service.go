package org

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hugh/orgspace/internal/database/models"
	"gorm.io/gorm"
)

var (
	ErrOrgExists     = errors.New("organisation already exists")
	ErrNotAuthorized = errors.New("not authorized")
	ErrBadRequest    = errors.New("organisation or user not found")
	ErrAlreadyMember = errors.New("user already in organisation")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

type CreateInput struct {
	Name        string
	Description string
}

// Create persists a new organisation owned by the caller, plus the
// caller's membership, in one transaction.
func (s *Service) Create(ctx context.Context, callerID uuid.UUID, input CreateInput) (*models.Organisation, error) {
	org := models.Organisation{
		Base:        models.Base{ID: uuid.New()},
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     &callerID,
	}

	// The caller must not already hold a membership in an organisation
	// carrying this id. The id is freshly generated, so this cannot fire
	// in practice; the check is kept as part of the create contract.
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Membership{}).
		Where("user_id = ? AND organisation_id = ?", callerID, org.ID).
		Count(&n).Error; err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrOrgExists
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&org).Error; err != nil {
			return err
		}
		return tx.Create(&models.Membership{
			UserID:         callerID,
			OrganisationID: org.ID,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return &org, nil
}

// Get returns an organisation only to its owner. A missing organisation
// and a non-owner caller produce the same outcome; shared membership is
// deliberately not enough here, unlike user reads.
func (s *Service) Get(ctx context.Context, callerID, orgID uuid.UUID) (*models.Organisation, error) {
	var org models.Organisation
	if err := s.db.WithContext(ctx).First(&org, "id = ?", orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotAuthorized
		}
		return nil, err
	}

	if org.OwnerID == nil || *org.OwnerID != callerID {
		return nil, ErrNotAuthorized
	}

	return &org, nil
}

// ListForUser returns every organisation the user is a member of.
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Organisation, error) {
	var orgs []models.Organisation
	err := s.db.WithContext(ctx).
		Joins("JOIN memberships ON memberships.organisation_id = organisations.id").
		Where("memberships.user_id = ?", userID).
		Find(&orgs).Error
	if err != nil {
		return nil, err
	}
	return orgs, nil
}

// AddUser links an existing user into an existing organisation.
func (s *Service) AddUser(ctx context.Context, orgID, userID uuid.UUID) error {
	var org models.Organisation
	if err := s.db.WithContext(ctx).First(&org, "id = ?", orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBadRequest
		}
		return err
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBadRequest
		}
		return err
	}

	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Membership{}).
		Where("user_id = ? AND organisation_id = ?", userID, orgID).
		Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrAlreadyMember
	}

	if err := s.db.WithContext(ctx).Create(&models.Membership{
		UserID:         userID,
		OrganisationID: orgID,
	}).Error; err != nil {
		// Racing inserts land on the composite primary key; same outcome
		// as the pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyMember
		}
		return err
	}

	return nil
}
