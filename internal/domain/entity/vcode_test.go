package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVCode_Valid(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		expiredAt time.Time
		want      bool
	}{
		{
			name:      "expires in the future",
			expiredAt: now.Add(5 * time.Minute),
			want:      true,
		},
		{
			name:      "expires one millisecond ahead",
			expiredAt: now.Add(time.Millisecond),
			want:      true,
		},
		{
			name:      "expired one millisecond ago",
			expiredAt: now.Add(-time.Millisecond),
			want:      false,
		},
		{
			name:      "expiry exactly now is invalid",
			expiredAt: now,
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vcode := &VCode{
				Owner:     OtpOwner("someone@example.com"),
				Code:      "a1b2c3",
				ExpiredAt: tt.expiredAt,
			}

			assert.Equal(t, tt.want, vcode.Valid(now))
		})
	}
}

func TestOwnerNamespacing(t *testing.T) {
	// Login and verification codes for one address must never collide.
	assert.Equal(t, "otp:a@example.com", OtpOwner("a@example.com"))
	assert.Equal(t, "verify:a@example.com", VerifyOwner("a@example.com"))
	assert.NotEqual(t, OtpOwner("a@example.com"), VerifyOwner("a@example.com"))
}
