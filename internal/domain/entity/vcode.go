package entity

import "time"

// VCode is a short-lived verification code record used for OTP login and
// email verification. (owner, code) is the composite natural key; several
// outstanding codes may coexist for one owner.
type VCode struct {
	Owner     string    `json:"owner"`
	Code      string    `json:"code"`
	ExpiredAt time.Time `json:"expired_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Valid reports whether the code is still usable at the given instant.
// Expiry is strict: a code expired one millisecond ago is invalid.
func (v *VCode) Valid(now time.Time) bool {
	return v.ExpiredAt.After(now)
}

// OtpOwner namespaces an email address for login codes so that OTP and
// email-verification codes for the same address can never collide.
func OtpOwner(email string) string {
	return "otp:" + email
}

// VerifyOwner namespaces an email address for email-verification codes.
func VerifyOwner(email string) string {
	return "verify:" + email
}
