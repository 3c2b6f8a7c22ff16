package usecase

import (
	"context"

	"github.com/google/uuid"

	"panel/internal/domain/entity"
)

// DictionaryInput carries the writable fields of a dictionary entry.
type DictionaryInput struct {
	Key    string
	Label  string
	Value  string
	Remark string
}

// DictionaryUsecase manages frontend lookup dictionaries.
type DictionaryUsecase interface {
	Create(ctx context.Context, input DictionaryInput) (*entity.Dictionary, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Dictionary, error)
	List(ctx context.Context) ([]*entity.Dictionary, error)
	Update(ctx context.Context, id uuid.UUID, input DictionaryInput) (*entity.Dictionary, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ResourceInput carries the writable fields of an API resource entry.
type ResourceInput struct {
	Name   string
	Path   string
	Method string
	Remark string
}

// ResourceUsecase manages the API resource registry.
type ResourceUsecase interface {
	Create(ctx context.Context, input ResourceInput) (*entity.Resource, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Resource, error)
	List(ctx context.Context) ([]*entity.Resource, error)
	Update(ctx context.Context, id uuid.UUID, input ResourceInput) (*entity.Resource, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MenuInput carries the writable fields of a navigation menu entry.
type MenuInput struct {
	Name     string
	Path     string
	Icon     string
	ParentID *uuid.UUID
	Sort     int
	Hidden   bool
}

// MenuUsecase manages the dashboard navigation tree.
type MenuUsecase interface {
	Create(ctx context.Context, input MenuInput) (*entity.Menu, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Menu, error)
	List(ctx context.Context) ([]*entity.Menu, error)
	Update(ctx context.Context, id uuid.UUID, input MenuInput) (*entity.Menu, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// OperationLogUsecase exposes the append-only request log.
type OperationLogUsecase interface {
	Record(ctx context.Context, logEntry *entity.OperationLog) error
	List(ctx context.Context, limit, offset int) ([]*entity.OperationLog, error)
}
