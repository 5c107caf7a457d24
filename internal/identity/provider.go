package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// ProviderVerifier validates tokens by calling the identity provider's user
// endpoint on every request.
type ProviderVerifier struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ Verifier = (*ProviderVerifier)(nil)

// NewProviderVerifier creates a verifier backed by the identity provider at
// baseURL. apiKey is sent alongside the user's token on every call.
func NewProviderVerifier(baseURL, apiKey string) *ProviderVerifier {
	return &ProviderVerifier{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type providerUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Verify calls GET {baseURL}/auth/v1/user with the bearer token. A rejected
// token maps to ErrInvalidToken; a failed call maps to ErrProviderUnavailable.
func (v *ProviderVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", v.apiKey)

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrInvalidToken
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: unexpected status %d: %s", ErrProviderUnavailable, resp.StatusCode, body)
	}

	var user providerUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("%w: decoding user response: %v", ErrProviderUnavailable, err)
	}

	id, err := uuid.Parse(user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: provider returned malformed user id %q", ErrProviderUnavailable, user.ID)
	}

	return &Identity{ID: id, Email: user.Email}, nil
}
