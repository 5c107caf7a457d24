package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/portfolli/backend/internal/models"
	"github.com/portfolli/backend/internal/service"
)

// RoleResolver looks up the stored role for a verified identity.
type RoleResolver interface {
	Resolve(ctx context.Context, userID uuid.UUID) (string, error)
}

// AdminMiddleware requires the authenticated user's stored role to be
// admin. Must run after AuthMiddleware. A missing profile row is an
// inconsistency (500), not a denial.
func AdminMiddleware(roles RoleResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := GetIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid authorization header"})
			return
		}

		role, err := roles.Resolve(c.Request.Context(), ident.ID)
		if err != nil {
			if errors.Is(err, service.ErrProfileMissing) {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "No profile for authenticated user"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve role"})
			return
		}

		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Next()
	}
}
