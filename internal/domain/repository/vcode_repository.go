package repository

import (
	"context"
	"errors"

	"panel/internal/domain/entity"
)

// ErrVCodeNotFound is returned when a verification code record is absent.
var ErrVCodeNotFound = errors.New("verification code not found")

// VCodeRepository defines the operations of the verification code store.
type VCodeRepository interface {
	// Create inserts a new (owner, code, expiredAt) record. Multiple
	// outstanding codes per owner are permitted.
	Create(ctx context.Context, vcode *entity.VCode) error

	// Find performs an exact composite lookup.
	Find(ctx context.Context, owner, code string) (*entity.VCode, error)

	// Delete removes a record; ErrVCodeNotFound if absent.
	Delete(ctx context.Context, owner, code string) error

	// Verify reports whether a matching record exists and is unexpired.
	// It never consumes the record; deletion after successful use is the
	// caller's decision.
	Verify(ctx context.Context, owner, code string) (bool, error)
}
