package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolli/backend/internal/models"
)

func TestAdminUpdateRolePromotesAndDemotes(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)
	roles := NewRoleService(db)
	user := seedProfile(t, db, "user@example.com")

	promoted, err := svc.UpdateRole(context.Background(), user.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, promoted.Role)

	role, err := roles.Resolve(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)

	demoted, err := svc.UpdateRole(context.Background(), user.ID, models.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, demoted.Role)
}

func TestAdminUpdateRoleRejectsUnknownRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)
	user := seedProfile(t, db, "user@example.com")

	_, err := svc.UpdateRole(context.Background(), user.ID, "superuser")
	assert.ErrorIs(t, err, ErrInvalidRole)

	var stored models.Profile
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.Equal(t, models.RoleUser, stored.Role)
}

func TestAdminUpdateRoleMissingUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)

	_, err := svc.UpdateRole(context.Background(), uuid.New(), models.RoleAdmin)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdminListUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db)
	seedProfile(t, db, "a@example.com")
	seedProfile(t, db, "b@example.com")

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestRoleResolveMissingProfile(t *testing.T) {
	db := newTestDB(t)
	roles := NewRoleService(db)

	_, err := roles.Resolve(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProfileMissing)
}
