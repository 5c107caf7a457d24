package identity

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderVerifierResolvesUser(t *testing.T) {
	userID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "Bearer good-token", r.Header.Get("Authorization"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"id":%q,"email":"user@example.com"}`, userID)
	}))
	defer srv.Close()

	verifier := NewProviderVerifier(srv.URL, "anon-key")
	ident, err := verifier.Verify(context.Background(), "good-token")
	require.NoError(t, err)
	assert.Equal(t, userID, ident.ID)
	assert.Equal(t, "user@example.com", ident.Email)
}

func TestProviderVerifierRejectedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	ident, err := NewProviderVerifier(srv.URL, "anon-key").Verify(context.Background(), "bad-token")
	assert.Nil(t, ident)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestProviderVerifierServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ident, err := NewProviderVerifier(srv.URL, "anon-key").Verify(context.Background(), "any-token")
	assert.Nil(t, ident)
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestProviderVerifierUnreachable(t *testing.T) {
	// Closed server: the call itself fails, which must never read as 401
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	ident, err := NewProviderVerifier(srv.URL, "anon-key").Verify(context.Background(), "any-token")
	assert.Nil(t, ident)
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestProviderVerifierMalformedUserID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"not-a-uuid","email":"user@example.com"}`)
	}))
	defer srv.Close()

	ident, err := NewProviderVerifier(srv.URL, "anon-key").Verify(context.Background(), "good-token")
	assert.Nil(t, ident)
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}
