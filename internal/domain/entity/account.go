package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies the authentication provider behind an Account.
type ProviderType string

const (
	// ProviderLocalPassword is the email/password credential provider.
	ProviderLocalPassword ProviderType = "localPwd"
	// ProviderLocalOTP is the passwordless email one-time-password provider.
	ProviderLocalOTP ProviderType = "localOtp"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// Account is a provider-scoped credential link bound to exactly one User.
// At most one Account exists per (provider, providerAccountID) pair; token
// updates always target that composite key, never the surrogate ID alone.
type Account struct {
	ID                uuid.UUID    `json:"id"`
	UserID            uuid.UUID    `json:"user_id"`
	Provider          ProviderType `json:"provider"`
	ProviderAccountID string       `json:"provider_account_id"`

	AccessToken           string     `json:"-"`
	RefreshToken          string     `json:"-"`
	AccessTokenExpiredAt  *time.Time `json:"-"`
	RefreshTokenExpiredAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
