package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"panel/internal/domain/entity"
	domainerrors "panel/internal/domain/errors"
	"panel/internal/domain/repository"
	"panel/internal/infra/persistence/model"
)

// permissionRepository implements the domain.PermissionRepository interface using GORM.
type permissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository is the constructor for permissionRepository.
func NewPermissionRepository(db *gorm.DB) repository.PermissionRepository {
	return &permissionRepository{db: db}
}

// Create persists a new permission.
func (repo *permissionRepository) Create(ctx context.Context, permission *entity.Permission) error {
	permM := model.PermissionFromEntity(permission)

	if err := repo.db.WithContext(ctx).Create(permM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("permission name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create permission")
	}

	permission.ID = permM.ID
	permission.CreatedAt = permM.CreatedAt
	permission.UpdatedAt = permM.UpdatedAt

	return nil
}

// FindByID retrieves a permission by ID.
func (repo *permissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Permission, error) {
	var permM model.PermissionModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&permM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPermissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find permission by id")
	}

	return permM.ToEntity(), nil
}

// List returns all permissions ordered by name.
func (repo *permissionRepository) List(ctx context.Context) ([]*entity.Permission, error) {
	var permMs []*model.PermissionModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&permMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list permissions")
	}

	permissions := make([]*entity.Permission, 0, len(permMs))
	for _, permM := range permMs {
		permissions = append(permissions, permM.ToEntity())
	}

	return permissions, nil
}

// Update modifies a permission row.
func (repo *permissionRepository) Update(ctx context.Context, permission *entity.Permission) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PermissionModel{}).
		Where("id = ?", permission.ID).
		Updates(map[string]any{
			"name":        permission.Name,
			"description": permission.Description,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("permission name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update permission")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPermissionNotFound
	}

	return nil
}

// Delete removes a permission.
func (repo *permissionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.PermissionModel{ID: id})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete permission")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPermissionNotFound
	}

	return nil
}
