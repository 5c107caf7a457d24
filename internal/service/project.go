package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/portfolli/backend/internal/models"
)

// ProjectService handles portfolio project CRUD.
type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// ProjectRequest carries the writable project fields.
type ProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	TechStack   string `json:"tech_stack"`
	LiveURL     string `json:"live_url"`
	RepoURL     string `json:"repo_url"`
	ImageURL    string `json:"image_url"`
}

// ListByUser returns a user's projects, newest first.
func (s *ProjectService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *ProjectService) Create(ctx context.Context, userID uuid.UUID, req *ProjectRequest) (*models.Project, error) {
	project := models.Project{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		TechStack:   req.TechStack,
		LiveURL:     req.LiveURL,
		RepoURL:     req.RepoURL,
		ImageURL:    req.ImageURL,
	}
	if err := s.db.WithContext(ctx).Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Update mutates a project through a single UPDATE constrained on both the
// project id and the owner id. Zero rows affected means not-found or
// not-owned; the caller can't tell which.
func (s *ProjectService) Update(ctx context.Context, userID, id uuid.UUID, req *ProjectRequest) (*models.Project, error) {
	res := s.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"title":       req.Title,
			"description": req.Description,
			"tech_stack":  req.TechStack,
			"live_url":    req.LiveURL,
			"repo_url":    req.RepoURL,
			"image_url":   req.ImageURL,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var project models.Project
	if err := s.db.WithContext(ctx).First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Project{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
