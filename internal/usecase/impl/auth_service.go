// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"panel/config"
	deliverycontext "panel/internal/delivery/context"
	"panel/internal/domain/entity"
	domainerrors "panel/internal/domain/errors"
	"panel/internal/domain/repository"
	"panel/internal/domain/service"
	"panel/internal/usecase"
)

const (
	defaultOtpTTL    = 5 * time.Minute
	defaultOtpLength = 6
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	vcodeRepo    repository.VCodeRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	codeGen      service.CodeGenerator
	mailSender   service.MailSender
	otpTTL       time.Duration
	otpLength    int
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	VCodeRepo    repository.VCodeRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	CodeGen      service.CodeGenerator
	MailSender   service.MailSender
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	otpTTL := defaultOtpTTL
	otpLength := defaultOtpLength
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.OtpTTLSeconds > 0 {
			otpTTL = time.Duration(params.Config.Auth.OtpTTLSeconds) * time.Second
		}
		if params.Config.Auth.OtpLength > 0 {
			otpLength = params.Config.Auth.OtpLength
		}
	}

	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		vcodeRepo:    params.VCodeRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		codeGen:      params.CodeGen,
		mailSender:   params.MailSender,
		otpTTL:       otpTTL,
		otpLength:    otpLength,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a new local-password user and mails a verification code.
// No tokens are issued; the account stays unusable until the email is verified.
func (srv *authService) SignUp(ctx context.Context, input usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	code, err := srv.codeGen.Generate(srv.otpLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification code")
	}

	user := &entity.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: passwordHash,
	}
	account := &entity.Account{
		Provider:          entity.ProviderLocalPassword,
		ProviderAccountID: input.Email,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, user, account); err != nil {
			return err
		}

		return repoFactory.VCodeRepo().Create(ctx, &entity.VCode{
			Owner:     entity.VerifyOwner(input.Email),
			Code:      code,
			ExpiredAt: time.Now().Add(srv.otpTTL),
		})
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute signup transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	if err := srv.mailSender.SendVerificationEmail(ctx, input.Email, code); err != nil {
		srv.log(ctx).Error("Failed to send verification email", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.ErrMailDeliveryFailed.WrapMessage("verification email not delivered")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", user.ID))

	return &usecase.SignUpOutput{User: user.Sanitized()}, nil
}

// VerifyEmail marks the address verified and consumes the signup code.
func (srv *authService) VerifyEmail(ctx context.Context, input usecase.VerifyEmailInput) error {
	owner := entity.VerifyOwner(input.Email)

	ok, err := srv.vcodeRepo.Verify(ctx, owner, input.Code)
	if err != nil {
		return errors.Wrap(err, "failed to verify email code")
	}
	if !ok {
		return domainerrors.ErrCodeInvalid.WrapMessage("email verification code rejected")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByEmail(ctx, input.Email, false)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("no account for this email")
			}

			return errors.Wrap(err, "failed to load user for verification")
		}

		if !user.Verified() {
			now := time.Now()
			user.EmailVerifiedAt = &now
			if err := userRepo.Update(ctx, user); err != nil {
				return errors.Wrap(err, "failed to mark email verified")
			}
		}

		// Verification codes are single-use, unlike OTP login codes.
		if err := repoFactory.VCodeRepo().Delete(ctx, owner, input.Code); err != nil &&
			!errors.Is(err, repository.ErrVCodeNotFound) {
			return errors.Wrap(err, "failed to consume verification code")
		}

		return nil
	})
}

// Login authenticates with email + password and persists the issued tokens
// on the local-password account row.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Username, true)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("no account for this email")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if user.Disabled {
		return nil, domainerrors.ErrAccountDisabled.WrapMessage("login rejected for disabled account")
	}
	if !user.Verified() {
		return nil, domainerrors.ErrEmailNotVerified.WrapMessage("login requires a verified email")
	}
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	tokens, err := srv.tokenService.GenerateTokens(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.userRepo.UpdateAccountTokens(ctx, entity.ProviderLocalPassword, input.Username, tokens); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// Password matched but the credential account row is missing.
			// Treat as an authentication failure, not a server fault.
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("no password account for this email")
		}

		return nil, errors.Wrap(err, "failed to persist issued tokens")
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{User: user.Sanitized(), Tokens: tokens}, nil
}

// SendOTP issues a one-time login code and mails it to the address. The
// address does not need to belong to an existing user yet.
func (srv *authService) SendOTP(ctx context.Context, input usecase.SendOTPInput) (*usecase.SendOTPOutput, error) {
	code, err := srv.codeGen.Generate(srv.otpLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate otp code")
	}

	issuedAt := time.Now()
	vcode := &entity.VCode{
		Owner:     entity.OtpOwner(input.Email),
		Code:      code,
		ExpiredAt: issuedAt.Add(srv.otpTTL),
	}
	if err := srv.vcodeRepo.Create(ctx, vcode); err != nil {
		return nil, errors.Wrap(err, "failed to store otp code")
	}

	if err := srv.mailSender.SendOtpEmail(ctx, input.Email, code); err != nil {
		srv.log(ctx).Error("Failed to send otp email", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.ErrMailDeliveryFailed.WrapMessage("otp email not delivered")
	}

	return &usecase.SendOTPOutput{Time: issuedAt, Duration: srv.otpTTL}, nil
}

// LoginWithOTP authenticates with a mailed one-time code, auto-registering
// unknown addresses. The code is deliberately not consumed; every login
// inside the TTL window with the same code succeeds.
func (srv *authService) LoginWithOTP(ctx context.Context, input usecase.OTPLoginInput) (*usecase.LoginOutput, error) {
	ok, err := srv.vcodeRepo.Verify(ctx, entity.OtpOwner(input.Email), input.Code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify otp code")
	}
	if !ok {
		return nil, domainerrors.ErrCodeInvalid.WrapMessage("otp code rejected")
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email, true)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			user, err = srv.registerOtpUser(ctx, input.Email)
			if err != nil {
				return nil, err
			}
		} else {
			return nil, errors.Wrap(err, "failed to load user for otp login")
		}
	}

	if user.Disabled {
		return nil, domainerrors.ErrAccountDisabled.WrapMessage("otp login rejected for disabled account")
	}

	tokens, err := srv.tokenService.GenerateTokens(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.userRepo.UpdateAccountTokens(ctx, entity.ProviderLocalOTP, input.Email, tokens); err != nil &&
		!errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to persist issued tokens")
	}

	srv.log(ctx).Info("OTP login succeeded", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{User: user.Sanitized(), Tokens: tokens}, nil
}

// registerOtpUser creates a user for a first-time OTP login. Proving control
// of the mailbox counts as verification, so emailVerifiedAt is set now.
func (srv *authService) registerOtpUser(ctx context.Context, email string) (*entity.User, error) {
	now := time.Now()
	user := &entity.User{
		Email:           email,
		EmailVerifiedAt: &now,
	}
	account := &entity.Account{
		Provider:          entity.ProviderLocalOTP,
		ProviderAccountID: email,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, user, account)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to auto-register otp user", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register otp user")
	}

	srv.log(ctx).Info("Auto-registered otp user", slog.Any("userID", user.ID))

	return user, nil
}

// Refresh mints a fresh token pair from a valid refresh token.
func (srv *authService) Refresh(ctx context.Context, input usecase.RefreshInput) (*entity.TokenPair, error) {
	tokens, err := srv.tokenService.Refresh(ctx, input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to refresh tokens")
	}

	return tokens, nil
}
