// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"panel/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrAccountNotFound is returned when a linked provider account is not found.
	ErrAccountNotFound = errors.New("account not found")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID. When hydrate is
	// true the user's roles and permissions are loaded and denormalized.
	FindByID(ctx context.Context, id uuid.UUID, hydrate bool) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address, with the
	// same hydration semantics as FindByID.
	FindByEmail(ctx context.Context, email string, hydrate bool) (*entity.User, error)

	// Create persists a new user together with its first linked provider
	// account in one write.
	Create(ctx context.Context, user *entity.User, account *entity.Account) error

	// Update modifies an existing user row (verification timestamp, name,
	// disabled flag). Roles are managed through the role repository.
	Update(ctx context.Context, user *entity.User) error

	// UpdateAccountTokens stores freshly issued provider tokens on the
	// account identified by the (provider, providerAccountID) composite key.
	UpdateAccountTokens(ctx context.Context, provider entity.ProviderType, providerAccountID string, tokens *entity.TokenPair) error
}
