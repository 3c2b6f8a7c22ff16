package auth

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"panel/config"
	"panel/internal/domain/entity"
	domainerrors "panel/internal/domain/errors"
	"panel/internal/domain/repository"
	mockRepo "panel/internal/mocks/repository"
	mockService "panel/internal/mocks/service"
)

func testJWTConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			AccessSecret:      "access-secret",
			RefreshSecret:     "refresh-secret",
			AccessTTLSeconds:  900,
			RefreshTTLSeconds: 604800,
			CacheTTLSeconds:   60,
		},
	}
}

func testUser() *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		Name:         "Admin",
		PasswordHash: "$2a$10$notarealhash",
		Roles: []*entity.Role{
			{Name: "admin", Permissions: []*entity.Permission{{Name: "user:read"}, {Name: "user:write"}}},
		},
		RoleNames:       []string{"admin"},
		PermissionNames: []string{"user:read", "user:write"},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolveSecrets_FallbackChain(t *testing.T) {
	// Both configured: used as-is.
	access := resolveAccessSecret(config.JWTConfig{AccessSecret: "a", RefreshSecret: "r"})
	assert.Equal(t, "a", access)
	assert.Equal(t, "r", resolveRefreshSecret(config.JWTConfig{AccessSecret: "a", RefreshSecret: "r"}, access))

	// Missing refresh secret falls back to the resolved access secret.
	access = resolveAccessSecret(config.JWTConfig{AccessSecret: "a"})
	assert.Equal(t, "a", resolveRefreshSecret(config.JWTConfig{AccessSecret: "a"}, access))

	// Nothing configured: access falls back to the fixed default, and the
	// refresh fallback picks up that same resolved value.
	access = resolveAccessSecret(config.JWTConfig{})
	assert.Equal(t, defaultAccessSecret, access)
	assert.Equal(t, defaultAccessSecret, resolveRefreshSecret(config.JWTConfig{}, access))
}

func TestJWTService_GenerateTokens(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	cache := mockService.NewMockCache(t)
	svc := NewJWTService(testJWTConfig(), userRepo, cache, discardLogger())

	user := testUser()
	before := time.Now()

	pair, err := svc.GenerateTokens(user)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	// Expiries are absolute instants offset by the configured TTLs.
	assert.WithinDuration(t, before.Add(900*time.Second), pair.AccessTokenExpiredAt, 5*time.Second)
	assert.WithinDuration(t, before.Add(604800*time.Second), pair.RefreshTokenExpiredAt, 5*time.Second)
}

func TestJWTService_Validate_RoundTrip(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	cache := mockService.NewMockCache(t)
	svc := NewJWTService(testJWTConfig(), userRepo, cache, discardLogger())

	user := testUser()
	pair, err := svc.GenerateTokens(user)
	require.NoError(t, err)

	userRepo.EXPECT().FindByID(mock.Anything, user.ID, true).Return(user, nil)

	resolved, err := svc.Validate(context.Background(), "Bearer "+pair.AccessToken, false)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
	assert.Equal(t, user.Email, resolved.Email)
	assert.Equal(t, []string{"admin"}, resolved.RoleNames)
	assert.ElementsMatch(t, []string{"user:read", "user:write"}, resolved.PermissionNames)
	// The password hash never leaves the auth boundary.
	assert.Empty(t, resolved.PasswordHash)
}

func TestJWTService_Validate_HeaderShape(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	cache := mockService.NewMockCache(t)
	svc := NewJWTService(testJWTConfig(), userRepo, cache, discardLogger())

	for _, header := range []string{"", "Bearer", "Bearer ", "Token abc", "abc"} {
		_, err := svc.Validate(context.Background(), header, false)
		require.Error(t, err, "header %q", header)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrUnauthorized.ErrorCode(), appErr.ErrorCode())
	}
}

func TestJWTService_Validate_WrongSecret(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	cache := mockService.NewMockCache(t)
	svc := NewJWTService(testJWTConfig(), userRepo, cache, discardLogger())

	otherCfg := testJWTConfig()
	otherCfg.JWT.AccessSecret = "some-other-secret"
	other := NewJWTService(otherCfg, userRepo, cache, discardLogger())

	pair, err := other.GenerateTokens(testUser())
	require.NoError(t, err)

	_, err = svc.Validate(context.Background(), "Bearer "+pair.AccessToken, false)
	assert.Error(t, err)
}

func TestJWTService_Validate_RefreshTokenRejectedOnAccessPath(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	cache := mockService.NewMockCache(t)
	svc := NewJWTService(testJWTConfig(), userRepo, cache, discardLogger())

	pair, err := svc.GenerateTokens(testUser())
	require.NoError(t, err)

	// The secrets differ, so a refresh token fails access verification.
	_, err = svc.Validate(context.Background(), "Bearer "+pair.RefreshToken, false)
	assert.Error(t, err)
}

func TestJWTService_Validate_VanishedUser(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	cache := mockService.NewMockCache(t)
	svc := NewJWTService(testJWTConfig(), userRepo, cache, discardLogger())

	user := testUser()
	pair, err := svc.GenerateTokens(user)
	require.NoError(t, err)

	userRepo.EXPECT().FindByID(mock.Anything, user.ID, true).Return(nil, repository.ErrUserNotFound)

	_, err = svc.Validate(context.Background(), "Bearer "+pair.AccessToken, false)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrUserNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestJWTService_ResolveFromToken_CacheMissPopulates(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	cache := mockService.NewMockCache(t)
	svc := NewJWTService(testJWTConfig(), userRepo, cache, discardLogger())

	user := testUser()
	pair, err := svc.GenerateTokens(user)
	require.NoError(t, err)

	cacheKey := "user:" + user.ID.String() + ":jwt"
	cache.EXPECT().Get(mock.Anything, cacheKey).Return("", false, nil)
	userRepo.EXPECT().FindByID(mock.Anything, user.ID, true).Return(user, nil)
	cache.EXPECT().
		Set(mock.Anything, cacheKey, mock.AnythingOfType("string"), 60*time.Second).
		Run(func(ctx context.Context, key, value string, ttl time.Duration) {
			var cached entity.User
			require.NoError(t, json.Unmarshal([]byte(value), &cached))
			assert.Equal(t, user.ID, cached.ID)
			assert.Empty(t, cached.PasswordHash)
		}).
		Return(nil)

	resolved, err := svc.ResolveFromToken(context.Background(), pair.AccessToken, false)
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, user.Email, resolved.Email)
	assert.Empty(t, resolved.PasswordHash)
}

func TestJWTService_ResolveFromToken_CacheHitSkipsStore(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	cache := mockService.NewMockCache(t)
	svc := NewJWTService(testJWTConfig(), userRepo, cache, discardLogger())

	user := testUser()
	pair, err := svc.GenerateTokens(user)
	require.NoError(t, err)

	encoded, err := json.Marshal(user.Sanitized())
	require.NoError(t, err)

	cacheKey := "user:" + user.ID.String() + ":jwt"
	cache.EXPECT().Get(mock.Anything, cacheKey).Return(string(encoded), true, nil)

	// No expectations on userRepo: a hit must not touch the store.
	resolved, err := svc.ResolveFromToken(context.Background(), pair.AccessToken, false)
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, user.ID, resolved.ID)
	assert.Equal(t, []string{"admin"}, resolved.RoleNames)
}

func TestJWTService_ResolveFromToken_VanishedUserReturnsNil(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	cache := mockService.NewMockCache(t)
	svc := NewJWTService(testJWTConfig(), userRepo, cache, discardLogger())

	user := testUser()
	pair, err := svc.GenerateTokens(user)
	require.NoError(t, err)

	cacheKey := "user:" + user.ID.String() + ":jwt"
	cache.EXPECT().Get(mock.Anything, cacheKey).Return("", false, nil)
	userRepo.EXPECT().FindByID(mock.Anything, user.ID, true).Return(nil, repository.ErrUserNotFound)

	resolved, err := svc.ResolveFromToken(context.Background(), pair.AccessToken, false)
	require.NoError(t, err)
	assert.Nil(t, resolved)
}

func TestJWTService_Refresh(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	cache := mockService.NewMockCache(t)
	svc := NewJWTService(testJWTConfig(), userRepo, cache, discardLogger())

	user := testUser()
	pair, err := svc.GenerateTokens(user)
	require.NoError(t, err)

	userRepo.EXPECT().FindByEmail(mock.Anything, user.Email, false).Return(user, nil).Twice()

	fresh, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, fresh.AccessToken)
	require.NotEmpty(t, fresh.RefreshToken)

	// The old refresh token is not invalidated; it still verifies.
	again, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, again.AccessToken)
}

func TestJWTService_Refresh_AccessTokenRejected(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	cache := mockService.NewMockCache(t)
	svc := NewJWTService(testJWTConfig(), userRepo, cache, discardLogger())

	pair, err := svc.GenerateTokens(testUser())
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_SharedSecretWhenRefreshUnset(t *testing.T) {
	cfg := testJWTConfig()
	cfg.JWT.RefreshSecret = ""

	userRepo := mockRepo.NewMockUserRepository(t)
	cache := mockService.NewMockCache(t)
	svc := NewJWTService(cfg, userRepo, cache, discardLogger())

	user := testUser()
	pair, err := svc.GenerateTokens(user)
	require.NoError(t, err)

	// With a shared secret the refresh token verifies on the access path too.
	userRepo.EXPECT().FindByID(mock.Anything, user.ID, true).Return(user, nil)
	resolved, err := svc.Validate(context.Background(), "Bearer "+pair.RefreshToken, false)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
}
