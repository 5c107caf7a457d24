package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/portfolli/backend/internal/models"
)

// CertificateService handles certificate CRUD plus the file upload to the
// external object store.
type CertificateService struct {
	db    *gorm.DB
	store ObjectStore
}

func NewCertificateService(db *gorm.DB, store ObjectStore) *CertificateService {
	return &CertificateService{db: db, store: store}
}

// CreateCertificateRequest is the multipart payload for a new certificate.
// File fields are empty when no file was attached.
type CreateCertificateRequest struct {
	Title       string
	Issuer      string
	IssueDate   string
	FileName    string
	ContentType string
	FileData    []byte
}

// ListByUser returns a user's certificates, newest first. Serves both the
// owner's list and the public portfolio view.
func (s *CertificateService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Certificate, error) {
	var certs []models.Certificate
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&certs).Error; err != nil {
		return nil, err
	}
	return certs, nil
}

// Create uploads the attached file to the object store and then inserts the
// metadata row. Upload failure aborts the whole operation so no row ever
// references a missing file.
func (s *CertificateService) Create(ctx context.Context, userID uuid.UUID, req *CreateCertificateRequest) (*models.Certificate, error) {
	var fileURL string
	if len(req.FileData) > 0 {
		key := fmt.Sprintf("%s/%d-%s", userID, time.Now().UnixMilli(), req.FileName)
		url, err := s.store.Upload(ctx, key, req.ContentType, req.FileData)
		if err != nil {
			return nil, fmt.Errorf("uploading certificate file: %w", err)
		}
		fileURL = url
	}

	cert := models.Certificate{
		UserID:    userID,
		Title:     req.Title,
		Issuer:    req.Issuer,
		IssueDate: req.IssueDate,
		FileURL:   fileURL,
	}
	if err := s.db.WithContext(ctx).Create(&cert).Error; err != nil {
		return nil, err
	}
	return &cert, nil
}

// Delete removes the caller's certificate. The stored object is removed
// best-effort: a failed object delete is logged as a partial failure and the
// metadata row is deleted anyway. The row delete is a single conditional
// statement on id AND user_id; zero rows affected reads as not found.
func (s *CertificateService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	var cert models.Certificate
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&cert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if cert.FileURL != "" {
		if err := s.store.Remove(ctx, cert.FileURL); err != nil {
			log.Printf("[CertificateService] partial failure: certificate %s metadata removed but object delete failed: %v", id, err)
		}
	}

	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Certificate{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
