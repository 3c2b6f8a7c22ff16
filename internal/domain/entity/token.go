package entity

import "time"

// TokenPair is the result of one token issuance: two opaque signed strings
// with their absolute expiry timestamps, both computed at issuance time.
type TokenPair struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiredAt  time.Time `json:"access_token_expired_at"`
	RefreshTokenExpiredAt time.Time `json:"refresh_token_expired_at"`
}
