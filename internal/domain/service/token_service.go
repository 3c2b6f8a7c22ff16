package service

import (
	"context"

	"panel/internal/domain/entity"
)

// TokenService mints and validates signed access/refresh tokens and resolves
// a token back to its user. It owns the two independent signing secrets and
// lifetimes; callers never see either.
type TokenService interface {
	// GenerateTokens signs one payload twice (access and refresh secrets,
	// independent TTLs) and returns the pair with absolute expiries.
	GenerateTokens(user *entity.User) (*entity.TokenPair, error)

	// Validate checks a raw "Authorization" header value, verifies the token
	// against the secret selected by isRefresh, and resolves the subject to a
	// stored user with role/permission names hydrated and the password hash
	// stripped. Header-shape problems yield ErrUnauthorized; verification
	// failures propagate; a vanished subject yields ErrUserNotFound.
	Validate(ctx context.Context, authorizationHeader string, isRefresh bool) (*entity.User, error)

	// ResolveFromToken is the cache-accelerated variant for non-HTTP entry
	// points. It returns (nil, nil) when the resolved user no longer exists,
	// so callers can drop the connection without error plumbing.
	ResolveFromToken(ctx context.Context, token string, isRefresh bool) (*entity.User, error)

	// Refresh verifies a refresh token, resolves the user by the username
	// claim, and mints a fresh pair. The consumed refresh token is not
	// invalidated; it stays usable until its natural expiry.
	Refresh(ctx context.Context, refreshToken string) (*entity.TokenPair, error)
}
