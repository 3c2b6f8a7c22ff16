package usecase

import (
	"context"

	"github.com/google/uuid"

	"panel/internal/domain/entity"
)

// RoleInput carries the writable fields of a role.
type RoleInput struct {
	Name        string
	Description string
}

// RoleUsecase manages roles and their links to users and permissions.
type RoleUsecase interface {
	Create(ctx context.Context, input RoleInput) (*entity.Role, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Role, error)
	List(ctx context.Context) ([]*entity.Role, error)
	Update(ctx context.Context, id uuid.UUID, input RoleInput) (*entity.Role, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// SetPermissions rewrites the role's permission set.
	SetPermissions(ctx context.Context, roleID uuid.UUID, permissionIDs []uuid.UUID) error

	// Assign and Remove manage the user-role link.
	Assign(ctx context.Context, roleID, userID uuid.UUID) error
	Remove(ctx context.Context, roleID, userID uuid.UUID) error
}

// PermissionInput carries the writable fields of a permission.
type PermissionInput struct {
	Name        string
	Description string
}

// PermissionUsecase manages the permission catalogue.
type PermissionUsecase interface {
	Create(ctx context.Context, input PermissionInput) (*entity.Permission, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Permission, error)
	List(ctx context.Context) ([]*entity.Permission, error)
	Update(ctx context.Context, id uuid.UUID, input PermissionInput) (*entity.Permission, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
