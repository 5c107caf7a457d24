package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/portfolli/backend/internal/identity"
	"github.com/portfolli/backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Profile{},
		&models.Certificate{},
		&models.Project{},
		&models.Category{},
		&models.Post{},
		&models.Comment{},
	))
	return db
}

func seedProfile(t *testing.T, db *gorm.DB, email string) *models.Profile {
	t.Helper()
	profile := models.Profile{
		ID:    uuid.New(),
		Email: email,
		Role:  models.RoleUser,
	}
	require.NoError(t, db.Create(&profile).Error)
	return &profile
}

func identityFor(p *models.Profile) *identity.Identity {
	return &identity.Identity{ID: p.ID, Email: p.Email}
}

// fakeStore is an in-memory ObjectStore. Upload and Remove can be forced to
// fail to exercise partial-failure paths.
type fakeStore struct {
	objects   map[string][]byte
	uploadErr error
	removeErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (f *fakeStore) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.objects[key] = data
	return fmt.Sprintf("https://store.test/%s", key), nil
}

func (f *fakeStore) Remove(ctx context.Context, fileURL string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	key := fileURL[len("https://store.test/"):]
	delete(f.objects, key)
	return nil
}
