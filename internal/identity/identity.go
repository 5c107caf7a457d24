package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrInvalidToken means the bearer token was rejected or has expired.
	// Surfaced as 401.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrProviderUnavailable means the identity provider call itself failed.
	// Surfaced as 500, never 401, so infra failures don't masquerade as
	// auth failures.
	ErrProviderUnavailable = errors.New("identity provider unavailable")
)

// Identity is a user resolved from a bearer token. Issued by the external
// provider; immutable from this system's perspective.
type Identity struct {
	ID    uuid.UUID
	Email string
}

// Verifier resolves a raw bearer token to an Identity. Verification is
// stateless: one check per request, no session caching.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
