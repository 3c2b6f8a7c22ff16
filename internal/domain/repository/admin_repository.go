package repository

import (
	"context"
	"errors"

	"panel/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for the admin-entity stores.
var (
	// ErrDictionaryNotFound is returned when a dictionary entry is not found.
	ErrDictionaryNotFound = errors.New("dictionary entry not found")
	// ErrResourceNotFound is returned when a resource entry is not found.
	ErrResourceNotFound = errors.New("resource entry not found")
	// ErrMenuNotFound is returned when a menu entry is not found.
	ErrMenuNotFound = errors.New("menu entry not found")
)

// DictionaryRepository defines the operations for dictionary persistence.
type DictionaryRepository interface {
	Create(ctx context.Context, dict *entity.Dictionary) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Dictionary, error)
	List(ctx context.Context) ([]*entity.Dictionary, error)
	Update(ctx context.Context, dict *entity.Dictionary) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ResourceRepository defines the operations for API resource persistence.
type ResourceRepository interface {
	Create(ctx context.Context, res *entity.Resource) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Resource, error)
	List(ctx context.Context) ([]*entity.Resource, error)
	Update(ctx context.Context, res *entity.Resource) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MenuRepository defines the operations for menu persistence.
type MenuRepository interface {
	Create(ctx context.Context, menu *entity.Menu) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Menu, error)
	List(ctx context.Context) ([]*entity.Menu, error)
	Update(ctx context.Context, menu *entity.Menu) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// OperationLogRepository defines the operations for request log persistence.
type OperationLogRepository interface {
	Create(ctx context.Context, log *entity.OperationLog) error
	List(ctx context.Context, limit, offset int) ([]*entity.OperationLog, error)
}
