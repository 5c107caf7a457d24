package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/portfolli/backend/internal/models"
)

// RoleService resolves the stored role for a verified identity.
type RoleService struct {
	db *gorm.DB
}

func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{db: db}
}

// Resolve returns the role stored on the user's profile. A missing profile
// row for an otherwise valid identity is ErrProfileMissing, never a silent
// denial.
func (s *RoleService) Resolve(ctx context.Context, userID uuid.UUID) (string, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).Select("role").First(&profile, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrProfileMissing
		}
		return "", fmt.Errorf("resolving role: %w", err)
	}
	if profile.Role == "" {
		return models.RoleUser, nil
	}
	return profile.Role, nil
}
