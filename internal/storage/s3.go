package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/portfolli/backend/config"
)

// S3Store stores certificate files in S3 behind the service.ObjectStore
// interface.
type S3Store struct {
	cfg *config.S3Config
}

func NewS3Store(cfg *config.S3Config) *S3Store {
	return &S3Store{cfg: cfg}
}

// Upload puts the object and returns its public URL.
func (s *S3Store) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := s.cfg.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.cfg.BucketName, key), nil
}

// Remove deletes the object behind a URL previously returned by Upload.
func (s *S3Store) Remove(ctx context.Context, fileURL string) error {
	key, err := s.keyFromURL(fileURL)
	if err != nil {
		return err
	}
	_, err = s.cfg.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}
	return nil
}

func (s *S3Store) keyFromURL(fileURL string) (string, error) {
	prefix := fmt.Sprintf("https://%s.s3.amazonaws.com/", s.cfg.BucketName)
	if !strings.HasPrefix(fileURL, prefix) {
		return "", fmt.Errorf("file URL %q does not belong to bucket %s", fileURL, s.cfg.BucketName)
	}
	return strings.TrimPrefix(fileURL, prefix), nil
}
