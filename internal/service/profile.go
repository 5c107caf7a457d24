package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/portfolli/backend/internal/identity"
	"github.com/portfolli/backend/internal/models"
)

// ProfileService handles user profile operations
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// UpdateProfileRequest carries the self-editable profile fields. Nil means
// "leave unchanged". Role is deliberately absent: only admins mutate it.
type UpdateProfileRequest struct {
	FullName  *string `json:"full_name"`
	Bio       *string `json:"bio"`
	Linkedin  *string `json:"linkedin"`
	Github    *string `json:"github"`
	Website   *string `json:"website"`
	AvatarURL *string `json:"avatar_url"`
}

// GetOrCreate returns the caller's profile, provisioning an empty row on
// first access. The provider owns registration; the profile row follows it.
func (s *ProfileService) GetOrCreate(ctx context.Context, ident *identity.Identity) (*models.Profile, error) {
	profile := models.Profile{
		ID:    ident.ID,
		Email: ident.Email,
		Role:  models.RoleUser,
	}
	if err := s.db.WithContext(ctx).Where("id = ?", ident.ID).FirstOrCreate(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update merges the provided fields into the caller's profile and returns
// the updated row.
func (s *ProfileService) Update(ctx context.Context, ident *identity.Identity, req *UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.GetOrCreate(ctx, ident)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Linkedin != nil {
		profile.Linkedin = *req.Linkedin
	}
	if req.Github != nil {
		profile.Github = *req.Github
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = *req.AvatarURL
	}

	if err := s.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// GetPublic returns a profile by id for public consumption.
func (s *ProfileService) GetPublic(ctx context.Context, id uuid.UUID) (*models.PublicProfile, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	public := profile.Public()
	return &public, nil
}
