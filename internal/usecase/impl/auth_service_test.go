package impl

import (
	"context"
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
	"panel/internal/usecase"
)

type authServiceMocks struct {
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	vcodeRepo    *mockRepo.MockVCodeRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	codeGen      *mockService.MockCodeGenerator
	mailSender   *mockService.MockMailSender
}

func newAuthService(t *testing.T) (usecase.AuthUsecase, *authServiceMocks) {
	t.Helper()

	mocks := &authServiceMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		vcodeRepo:    mockRepo.NewMockVCodeRepository(t),
		hasher:       mockService.NewMockPasswordHasher(t),
		tokenService: mockService.NewMockTokenService(t),
		codeGen:      mockService.NewMockCodeGenerator(t),
		mailSender:   mockService.NewMockMailSender(t),
	}

	service := NewAuthService(AuthServiceParams{
		TxManager:    mocks.txManager,
		UserRepo:     mocks.userRepo,
		VCodeRepo:    mocks.vcodeRepo,
		Hasher:       mocks.hasher,
		TokenService: mocks.tokenService,
		CodeGen:      mocks.codeGen,
		MailSender:   mocks.mailSender,
		Config: &config.Config{
			Auth: &config.AuthConfig{OtpTTLSeconds: 300, OtpLength: 6},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, mocks
}

func verifiedUser(email string) *entity.User {
	now := time.Now()

	return &entity.User{
		ID:              uuid.New(),
		Email:           email,
		Name:            "Someone",
		PasswordHash:    "$2a$10$storedhash",
		EmailVerifiedAt: &now,
	}
}

func tokenPair() *entity.TokenPair {
	now := time.Now()

	return &entity.TokenPair{
		AccessToken:           "access",
		RefreshToken:          "refresh",
		AccessTokenExpiredAt:  now.Add(15 * time.Minute),
		RefreshTokenExpiredAt: now.Add(7 * 24 * time.Hour),
	}
}

func TestAuthService_SignUp_Success(t *testing.T) {
	service, mocks := newAuthService(t)
	ctx := context.Background()

	mocks.hasher.EXPECT().Hash("pass-word").Return("hashed", nil)
	mocks.codeGen.EXPECT().Generate(6).Return("a1b2c3", nil)

	mocks.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txVCodeRepo := mockRepo.NewMockVCodeRepository(t)

			factory.EXPECT().UserRepo().Return(txUserRepo)
			factory.EXPECT().VCodeRepo().Return(txVCodeRepo)

			txUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User"), mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, user *entity.User, account *entity.Account) {
					user.ID = uuid.New()
					assert.Equal(t, "hashed", user.PasswordHash)
					assert.Nil(t, user.EmailVerifiedAt)
					assert.Equal(t, entity.ProviderLocalPassword, account.Provider)
					assert.Equal(t, "new@example.com", account.ProviderAccountID)
				}).
				Return(nil)
			txVCodeRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.VCode")).
				Run(func(ctx context.Context, vcode *entity.VCode) {
					assert.Equal(t, "verify:new@example.com", vcode.Owner)
					assert.Equal(t, "a1b2c3", vcode.Code)
				}).
				Return(nil)

			return fn(factory)
		})

	mocks.mailSender.EXPECT().SendVerificationEmail(ctx, "new@example.com", "a1b2c3").Return(nil)

	out, err := service.SignUp(ctx, usecase.SignUpInput{
		Email:    "new@example.com",
		Password: "pass-word",
		Name:     "New User",
	})

	require.NoError(t, err)
	require.NotNil(t, out.User)
	assert.Nil(t, out.User.EmailVerifiedAt)
	// Hashes never leave the auth boundary.
	assert.Empty(t, out.User.PasswordHash)
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	service, mocks := newAuthService(t)
	ctx := context.Background()

	mocks.hasher.EXPECT().Hash("pass-word").Return("hashed", nil)
	mocks.codeGen.EXPECT().Generate(6).Return("a1b2c3", nil)

	mocks.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered"))

	_, err := service.SignUp(ctx, usecase.SignUpInput{
		Email:    "taken@example.com",
		Password: "pass-word",
	})

	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_VerifyEmail_Success(t *testing.T) {
	service, mocks := newAuthService(t)
	ctx := context.Background()
	user := verifiedUser("new@example.com")
	user.EmailVerifiedAt = nil

	mocks.vcodeRepo.EXPECT().Verify(ctx, "verify:new@example.com", "a1b2c3").Return(true, nil)

	mocks.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txVCodeRepo := mockRepo.NewMockVCodeRepository(t)

			factory.EXPECT().UserRepo().Return(txUserRepo)
			factory.EXPECT().VCodeRepo().Return(txVCodeRepo)

			txUserRepo.EXPECT().FindByEmail(ctx, "new@example.com", false).Return(user, nil)
			txUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, updated *entity.User) {
					assert.NotNil(t, updated.EmailVerifiedAt)
				}).
				Return(nil)
			txVCodeRepo.EXPECT().Delete(ctx, "verify:new@example.com", "a1b2c3").Return(nil)

			return fn(factory)
		})

	err := service.VerifyEmail(ctx, usecase.VerifyEmailInput{Email: "new@example.com", Code: "a1b2c3"})
	require.NoError(t, err)
}

func TestAuthService_VerifyEmail_BadCode(t *testing.T) {
	service, mocks := newAuthService(t)
	ctx := context.Background()

	mocks.vcodeRepo.EXPECT().Verify(ctx, "verify:new@example.com", "wrong").Return(false, nil)

	err := service.VerifyEmail(ctx, usecase.VerifyEmailInput{Email: "new@example.com", Code: "wrong"})
	require.ErrorIs(t, err, domainerrors.ErrCodeInvalid)
}

func TestAuthService_Login_Success(t *testing.T) {
	service, mocks := newAuthService(t)
	ctx := context.Background()
	user := verifiedUser("admin@example.com")
	pair := tokenPair()

	mocks.userRepo.EXPECT().FindByEmail(ctx, "admin@example.com", true).Return(user, nil)
	mocks.hasher.EXPECT().Check("pass-word", user.PasswordHash).Return(true)
	mocks.tokenService.EXPECT().GenerateTokens(user).Return(pair, nil)
	mocks.userRepo.EXPECT().
		UpdateAccountTokens(ctx, entity.ProviderLocalPassword, "admin@example.com", pair).
		Return(nil)

	out, err := service.Login(ctx, usecase.LoginInput{Username: "admin@example.com", Password: "pass-word"})

	require.NoError(t, err)
	assert.Equal(t, pair, out.Tokens)
	assert.Equal(t, user.ID, out.User.ID)
	assert.Empty(t, out.User.PasswordHash)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	service, mocks := newAuthService(t)
	ctx := context.Background()

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com", true).
		Return(nil, repository.ErrUserNotFound)

	_, err := service.Login(ctx, usecase.LoginInput{Username: "ghost@example.com", Password: "x"})
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_Login_UnverifiedEmail(t *testing.T) {
	service, mocks := newAuthService(t)
	ctx := context.Background()
	user := verifiedUser("new@example.com")
	user.EmailVerifiedAt = nil

	mocks.userRepo.EXPECT().FindByEmail(ctx, "new@example.com", true).Return(user, nil)

	_, err := service.Login(ctx, usecase.LoginInput{Username: "new@example.com", Password: "pass-word"})
	require.ErrorIs(t, err, domainerrors.ErrEmailNotVerified)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	service, mocks := newAuthService(t)
	ctx := context.Background()
	user := verifiedUser("admin@example.com")

	mocks.userRepo.EXPECT().FindByEmail(ctx, "admin@example.com", true).Return(user, nil)
	mocks.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	_, err := service.Login(ctx, usecase.LoginInput{Username: "admin@example.com", Password: "wrong"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	service, mocks := newAuthService(t)
	ctx := context.Background()
	user := verifiedUser("blocked@example.com")
	user.Disabled = true

	mocks.userRepo.EXPECT().FindByEmail(ctx, "blocked@example.com", true).Return(user, nil)

	_, err := service.Login(ctx, usecase.LoginInput{Username: "blocked@example.com", Password: "pass-word"})
	require.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}

func TestAuthService_SendOTP(t *testing.T) {
	service, mocks := newAuthService(t)
	ctx := context.Background()

	mocks.codeGen.EXPECT().Generate(6).Return("ff00aa", nil)
	mocks.vcodeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.VCode")).
		Run(func(ctx context.Context, vcode *entity.VCode) {
			assert.Equal(t, "otp:someone@example.com", vcode.Owner)
			assert.Equal(t, "ff00aa", vcode.Code)
			assert.WithinDuration(t, time.Now().Add(5*time.Minute), vcode.ExpiredAt, 5*time.Second)
		}).
		Return(nil)
	mocks.mailSender.EXPECT().SendOtpEmail(ctx, "someone@example.com", "ff00aa").Return(nil)

	out, err := service.SendOTP(ctx, usecase.SendOTPInput{Email: "someone@example.com"})

	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, out.Duration)
	assert.WithinDuration(t, time.Now(), out.Time, 5*time.Second)
}

func TestAuthService_LoginWithOTP_AutoRegisters(t *testing.T) {
	service, mocks := newAuthService(t)
	ctx := context.Background()
	pair := tokenPair()

	mocks.vcodeRepo.EXPECT().Verify(ctx, "otp:first@example.com", "ff00aa").Return(true, nil)
	mocks.userRepo.EXPECT().
		FindByEmail(ctx, "first@example.com", true).
		Return(nil, repository.ErrUserNotFound)

	mocks.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().UserRepo().Return(txUserRepo)
			txUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User"), mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, user *entity.User, account *entity.Account) {
					user.ID = uuid.New()
					assert.NotNil(t, user.EmailVerifiedAt)
					assert.Empty(t, user.PasswordHash)
					assert.Equal(t, entity.ProviderLocalOTP, account.Provider)
				}).
				Return(nil)

			return fn(factory)
		})

	mocks.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("*entity.User")).
		Return(pair, nil)
	mocks.userRepo.EXPECT().
		UpdateAccountTokens(ctx, entity.ProviderLocalOTP, "first@example.com", pair).
		Return(nil)

	out, err := service.LoginWithOTP(ctx, usecase.OTPLoginInput{Email: "first@example.com", Code: "ff00aa"})

	require.NoError(t, err)
	assert.Equal(t, pair, out.Tokens)
	assert.NotNil(t, out.User.EmailVerifiedAt)
}

func TestAuthService_LoginWithOTP_CodeReuseWithinTTL(t *testing.T) {
	service, mocks := newAuthService(t)
	ctx := context.Background()
	user := verifiedUser("repeat@example.com")
	pair := tokenPair()

	// The code is not consumed: a second login with the same code succeeds.
	mocks.vcodeRepo.EXPECT().Verify(ctx, "otp:repeat@example.com", "ff00aa").Return(true, nil).Twice()
	mocks.userRepo.EXPECT().FindByEmail(ctx, "repeat@example.com", true).Return(user, nil).Twice()
	mocks.tokenService.EXPECT().GenerateTokens(user).Return(pair, nil).Twice()
	mocks.userRepo.EXPECT().
		UpdateAccountTokens(ctx, entity.ProviderLocalOTP, "repeat@example.com", pair).
		Return(nil).Twice()

	_, err := service.LoginWithOTP(ctx, usecase.OTPLoginInput{Email: "repeat@example.com", Code: "ff00aa"})
	require.NoError(t, err)

	_, err = service.LoginWithOTP(ctx, usecase.OTPLoginInput{Email: "repeat@example.com", Code: "ff00aa"})
	require.NoError(t, err)
}

func TestAuthService_LoginWithOTP_BadCode(t *testing.T) {
	service, mocks := newAuthService(t)
	ctx := context.Background()

	mocks.vcodeRepo.EXPECT().Verify(ctx, "otp:someone@example.com", "stale").Return(false, nil)

	_, err := service.LoginWithOTP(ctx, usecase.OTPLoginInput{Email: "someone@example.com", Code: "stale"})
	require.ErrorIs(t, err, domainerrors.ErrCodeInvalid)
}

func TestAuthService_Refresh(t *testing.T) {
	service, mocks := newAuthService(t)
	ctx := context.Background()
	pair := tokenPair()

	mocks.tokenService.EXPECT().Refresh(ctx, "old-refresh").Return(pair, nil)

	out, err := service.Refresh(ctx, usecase.RefreshInput{RefreshToken: "old-refresh"})

	require.NoError(t, err)
	assert.Equal(t, pair, out)
}
