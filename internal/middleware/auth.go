package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/portfolli/backend/internal/identity"
)

// Context keys set by AuthMiddleware.
const (
	ContextIdentityKey = "identity"
	ContextUserIDKey   = "user_id"
)

// AuthMiddleware creates a middleware that resolves the bearer token to an
// identity. Provider outages surface as 500, not 401.
func AuthMiddleware(verifier identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid authorization header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid authorization header"})
			return
		}

		ident, err := verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			if errors.Is(err, identity.ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
			return
		}

		c.Set(ContextIdentityKey, ident)
		c.Set(ContextUserIDKey, ident.ID)
		c.Next()
	}
}

// GetIdentity returns the identity resolved by AuthMiddleware.
func GetIdentity(c *gin.Context) (*identity.Identity, bool) {
	value, exists := c.Get(ContextIdentityKey)
	if !exists {
		return nil, false
	}
	ident, ok := value.(*identity.Identity)
	return ident, ok
}
