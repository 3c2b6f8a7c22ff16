// Package mail provides the SMTP implementation of the domain mail sender.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"panel/config"
	"panel/internal/domain/service"
	"panel/internal/errors"
)

type smtpSender struct {
	client *gomail.Client
	from   string
}

// NewSMTPSender creates a new SMTP mail sender instance.
func NewSMTPSender(cfg *config.Config) (service.MailSender, error) {
	smtp := cfg.SMTP
	if smtp == nil {
		return nil, errors.New("smtp config is required")
	}

	client, err := gomail.NewClient(smtp.Host,
		gomail.WithPort(smtp.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(smtp.Username),
		gomail.WithPassword(smtp.Password),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	return &smtpSender{
		client: client,
		from:   smtp.From,
	}, nil
}

// SendVerificationEmail delivers the signup confirmation code.
func (s *smtpSender) SendVerificationEmail(ctx context.Context, email, code string) error {
	subject := "Confirm your email address"
	body := fmt.Sprintf("Your email verification code is %s. Enter it to activate your account.", code)

	return s.send(ctx, email, subject, body)
}

// SendOtpEmail delivers a one-time login code.
func (s *smtpSender) SendOtpEmail(ctx context.Context, email, code string) error {
	subject := "Your one-time login code"
	body := fmt.Sprintf("Your one-time login code is %s. It expires shortly; do not share it.", code)

	return s.send(ctx, email, subject, body)
}

func (s *smtpSender) send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return errors.Wrap(err, "failed to set mail sender")
	}
	if err := msg.To(to); err != nil {
		return errors.Wrap(err, "failed to set mail recipient")
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to deliver mail")
	}

	return nil
}
