package repository

import (
	"context"
	"errors"

	"panel/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for role/permission persistence.
var (
	// ErrRoleNotFound is returned when a role is not found.
	ErrRoleNotFound = errors.New("role not found")
	// ErrPermissionNotFound is returned when a permission is not found.
	ErrPermissionNotFound = errors.New("permission not found")
)

// RoleRepository defines the standard operations for role persistence.
type RoleRepository interface {
	Create(ctx context.Context, role *entity.Role) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Role, error)
	List(ctx context.Context) ([]*entity.Role, error)
	Update(ctx context.Context, role *entity.Role) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ReplacePermissions rewrites the role's permission set to exactly the
	// given permission IDs.
	ReplacePermissions(ctx context.Context, roleID uuid.UUID, permissionIDs []uuid.UUID) error

	// AssignToUser links a role to a user; removing works symmetrically.
	AssignToUser(ctx context.Context, roleID, userID uuid.UUID) error
	RemoveFromUser(ctx context.Context, roleID, userID uuid.UUID) error
}

// PermissionRepository defines the standard operations for permission persistence.
type PermissionRepository interface {
	Create(ctx context.Context, permission *entity.Permission) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Permission, error)
	List(ctx context.Context) ([]*entity.Permission, error)
	Update(ctx context.Context, permission *entity.Permission) error
	Delete(ctx context.Context, id uuid.UUID) error
}
