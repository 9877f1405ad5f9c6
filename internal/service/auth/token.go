package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// TokenPair is an opaque access/refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenIssuer mints tokens for an authenticated user.
type TokenIssuer interface {
	// Issue returns a fresh token pair for userID. The two tokens are distinct.
	Issue(ctx context.Context, userID string) (TokenPair, error)
}

// uuidTokenIssuer issues random UUIDs. Tokens are not recorded or checked
// anywhere; nothing in the API enforces authentication.
type uuidTokenIssuer struct {
	newToken func() (uuid.UUID, error) // Injectable for testing
}

// Ensure uuidTokenIssuer implements TokenIssuer interface
var _ TokenIssuer = (*uuidTokenIssuer)(nil)

// NewTokenIssuer creates a TokenIssuer that hands out random UUID tokens.
func NewTokenIssuer() TokenIssuer {
	return &uuidTokenIssuer{newToken: uuid.NewRandom}
}

// Issue implements TokenIssuer.Issue
func (i *uuidTokenIssuer) Issue(ctx context.Context, userID string) (TokenPair, error) {
	access, err := i.newToken()
	if err != nil {
		return TokenPair{}, fmt.Errorf("%w: access token: %w", ErrTokenIssue, err)
	}
	refresh, err := i.newToken()
	if err != nil {
		return TokenPair{}, fmt.Errorf("%w: refresh token: %w", ErrTokenIssue, err)
	}
	return TokenPair{AccessToken: access.String(), RefreshToken: refresh.String()}, nil
}
