package service

import "context"

// MailSender delivers transactional mail. Transport failures surface as
// errors that the authentication service propagates unmodified.
type MailSender interface {
	// SendVerificationEmail delivers the signup confirmation code.
	SendVerificationEmail(ctx context.Context, email, code string) error

	// SendOtpEmail delivers a one-time login code.
	SendOtpEmail(ctx context.Context, email, code string) error
}
