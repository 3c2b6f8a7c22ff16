package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"panel/config"
	"panel/internal/domain/entity"
	domainerrors "panel/internal/domain/errors"
	"panel/internal/domain/repository"
	"panel/internal/domain/service"
)

const (
	// tokenIssuer is the iss claim stamped on every issued token.
	tokenIssuer = "panel"

	// defaultAccessSecret is the development fallback used when no access
	// secret is configured. Weak on purpose; production deployments are
	// expected to set both secrets.
	defaultAccessSecret = "panel-insecure-dev-secret"

	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
	defaultCacheTTL   = time.Minute
)

// Claims is the payload shared by access and refresh tokens. Subject carries
// the user ID; Username carries the email so refresh can resolve by it.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// jwtService implements service.TokenService using HS256-signed JWTs with two
// independent secrets and a read-through cache for reverse resolution.
type jwtService struct {
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
	cacheTTL      time.Duration

	userRepo repository.UserRepository
	cache    service.Cache
	logger   *slog.Logger
}

// resolveAccessSecret applies the configured access secret or falls back to
// the fixed development default.
func resolveAccessSecret(cfg config.JWTConfig) string {
	if cfg.AccessSecret == "" {
		return defaultAccessSecret
	}

	return cfg.AccessSecret
}

// resolveRefreshSecret falls back to the already-resolved access secret when
// no refresh secret is configured. The chain is resolved exactly once, at
// construction, and the result is immutable afterwards.
func resolveRefreshSecret(cfg config.JWTConfig, accessSecret string) string {
	if cfg.RefreshSecret == "" {
		return accessSecret
	}

	return cfg.RefreshSecret
}

func secondsOrDefault(seconds int, fallback time.Duration) time.Duration {
	if seconds <= 0 {
		return fallback
	}

	return time.Duration(seconds) * time.Second
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config, userRepo repository.UserRepository, cache service.Cache, logger *slog.Logger) service.TokenService {
	accessSecret := resolveAccessSecret(cfg.JWT)

	return &jwtService{
		accessSecret:  accessSecret,
		refreshSecret: resolveRefreshSecret(cfg.JWT, accessSecret),
		accessTTL:     secondsOrDefault(cfg.JWT.AccessTTLSeconds, defaultAccessTTL),
		refreshTTL:    secondsOrDefault(cfg.JWT.RefreshTTLSeconds, defaultRefreshTTL),
		cacheTTL:      secondsOrDefault(cfg.JWT.CacheTTLSeconds, defaultCacheTTL),
		userRepo:      userRepo,
		cache:         cache,
		logger:        logger,
	}
}

// GenerateTokens signs the same identity payload twice, once per secret/TTL,
// and computes absolute expiries from a single issuance instant.
func (s *jwtService) GenerateTokens(user *entity.User) (*entity.TokenPair, error) {
	now := time.Now()
	accessExpiry := now.Add(s.accessTTL)
	refreshExpiry := now.Add(s.refreshTTL)

	accessToken, err := s.signToken(user, now, accessExpiry, s.accessSecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	refreshToken, err := s.signToken(user, now, refreshExpiry, s.refreshSecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign refresh token")
	}

	return &entity.TokenPair{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		AccessTokenExpiredAt:  accessExpiry,
		RefreshTokenExpiredAt: refreshExpiry,
	}, nil
}

// Validate checks a raw Authorization header and resolves the caller identity.
func (s *jwtService) Validate(ctx context.Context, authorizationHeader string, isRefresh bool) (*entity.User, error) {
	tokenString, ok := bearerToken(authorizationHeader)
	if !ok {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("missing or malformed authorization header")
	}

	claims, err := s.parseToken(tokenString, s.secretFor(isRefresh))
	if err != nil {
		// Verification failures propagate so callers can tell malformed
		// from expired if they care.
		return nil, errors.Wrap(err, "failed to verify token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("invalid subject claim")
	}

	user, err := s.userRepo.FindByID(ctx, userID, true)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to resolve token subject")
	}

	return user.Sanitized(), nil
}

// ResolveFromToken is the cache-accelerated resolution path for non-HTTP
// callers. A hit returns the cached identity without touching the store.
func (s *jwtService) ResolveFromToken(ctx context.Context, token string, isRefresh bool) (*entity.User, error) {
	claims, err := s.parseToken(token, s.secretFor(isRefresh))
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify token")
	}

	cacheKey := "user:" + claims.Subject + ":jwt"

	if cached, ok, cacheErr := s.cache.Get(ctx, cacheKey); cacheErr == nil && ok {
		var user entity.User
		if unmarshalErr := json.Unmarshal([]byte(cached), &user); unmarshalErr == nil {
			return &user, nil
		}
		// Corrupt entry: fall through and rebuild it from the store.
		s.logger.Warn("Dropping corrupt token cache entry", slog.String("key", cacheKey))
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("invalid subject claim")
	}

	user, err := s.userRepo.FindByID(ctx, userID, true)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Callers use nil to decide whether to drop the connection.
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to resolve token subject")
	}

	sanitized := user.Sanitized()

	encoded, err := json.Marshal(sanitized)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode user for cache")
	}
	if err := s.cache.Set(ctx, cacheKey, string(encoded), s.cacheTTL); err != nil {
		// Cache write failures must not break resolution; log and move on.
		s.logger.Warn("Failed to store token cache entry", slog.String("key", cacheKey), slog.Any("error", err))
	}

	return sanitized, nil
}

// Refresh verifies the refresh token and mints a fresh pair. The user is
// resolved by the username claim, not the subject. The consumed refresh
// token is not invalidated and remains valid until its natural expiry.
func (s *jwtService) Refresh(ctx context.Context, refreshToken string) (*entity.TokenPair, error) {
	claims, err := s.parseToken(refreshToken, s.refreshSecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify refresh token")
	}

	user, err := s.userRepo.FindByEmail(ctx, claims.Username, false)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("refresh token user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to resolve refresh token user")
	}

	pair, err := s.GenerateTokens(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens during refresh")
	}

	return pair, nil
}

func (s *jwtService) secretFor(isRefresh bool) string {
	if isRefresh {
		return s.refreshSecret
	}

	return s.accessSecret
}

// signToken creates one signed JWT for the shared identity payload.
func (s *jwtService) signToken(user *entity.User, issuedAt, expiresAt time.Time, secret string) (string, error) {
	claims := &Claims{
		Username: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}

// parseToken verifies signature and expiry against one secret.
func (s *jwtService) parseToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return claims, nil
}

// bearerToken extracts the token segment from a "Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == header || tokenString == "" {
		return "", false
	}

	return tokenString, true
}
