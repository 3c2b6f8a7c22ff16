// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"panel/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new user.
type SignUpInput struct {
	Email    string
	Password string
	Name     string
}

// VerifyEmailInput confirms an email address with the code mailed at signup.
type VerifyEmailInput struct {
	Email string
	Code  string
}

// LoginInput defines the data required for a credential login.
type LoginInput struct {
	Username string
	Password string
}

// SendOTPInput requests a one-time login code for an email address.
type SendOTPInput struct {
	Email string
}

// OTPLoginInput defines the data required for a one-time-code login.
type OTPLoginInput struct {
	Email string
	Code  string
}

// RefreshInput carries a refresh token for re-issuance.
type RefreshInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// SignUpOutput returns the newly created user's public information.
// No tokens are issued at signup; the email must be verified first.
type SignUpOutput struct {
	User *entity.User
}

// SendOTPOutput reports when the code was issued and for how long it lives.
type SendOTPOutput struct {
	Time     time.Time
	Duration time.Duration
}

// LoginOutput returns the authenticated user and their token pair.
type LoginOutput struct {
	User   *entity.User
	Tokens *entity.TokenPair
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract the delivery layer depends on.
type AuthUsecase interface {
	// SignUp registers a new local-password user and mails a verification
	// code. Duplicate emails conflict.
	SignUp(ctx context.Context, input SignUpInput) (*SignUpOutput, error)

	// VerifyEmail marks the address verified and consumes the code.
	VerifyEmail(ctx context.Context, input VerifyEmailInput) error

	// Login authenticates with email + password. Unknown emails are
	// NotFound; unverified, disabled, or mismatched credentials are
	// Unauthorized. Issued tokens are persisted on the account row.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// SendOTP issues a one-time login code and mails it.
	SendOTP(ctx context.Context, input SendOTPInput) (*SendOTPOutput, error)

	// LoginWithOTP authenticates with a mailed code, auto-registering the
	// user on first login. The code is not consumed and stays usable until
	// its TTL runs out.
	LoginWithOTP(ctx context.Context, input OTPLoginInput) (*LoginOutput, error)

	// Refresh mints a fresh token pair from a valid refresh token.
	Refresh(ctx context.Context, input RefreshInput) (*entity.TokenPair, error)
}
