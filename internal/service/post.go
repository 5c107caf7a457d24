package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/portfolli/backend/internal/models"
)

// PostService handles forum posts and categories.
type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// List returns all posts with author and category, newest first, optionally
// filtered by category.
func (s *PostService) List(ctx context.Context, categoryID *uuid.UUID) ([]models.Post, error) {
	query := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Order("created_at DESC")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var posts []models.Post
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Categories returns all categories ordered by name.
func (s *PostService) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Get returns a post with its author, category and ordered comments.
func (s *PostService) Get(ctx context.Context, id uuid.UUID) (*models.Post, []models.Comment, error) {
	var post models.Post
	err := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	var comments []models.Comment
	if err := s.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", id).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, nil, err
	}
	return &post, comments, nil
}

func (s *PostService) Create(ctx context.Context, userID uuid.UUID, title, content string, categoryID *uuid.UUID) (*models.Post, error) {
	post := models.Post{
		UserID:     userID,
		CategoryID: categoryID,
		Title:      title,
		Content:    content,
	}
	if err := s.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, err
	}

	// Reload with associations for the response payload
	if err := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		First(&post, "id = ?", post.ID).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete removes the caller's post and its comments in one transaction. The
// post delete is conditional on id AND user_id.
func (s *PostService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Post{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error
	})
}

// DeleteAny removes a post regardless of owner. Admin moderation path;
// comments cascade the same way.
func (s *PostService) DeleteAny(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&models.Post{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error
	})
}
