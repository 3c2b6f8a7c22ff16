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

// roleRepository implements the domain.RoleRepository interface using GORM.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

// Create persists a new role.
func (repo *roleRepository) Create(ctx context.Context, role *entity.Role) error {
	roleM := model.RoleFromEntity(role)

	if err := repo.db.WithContext(ctx).Create(roleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("role name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create role")
	}

	role.ID = roleM.ID
	role.CreatedAt = roleM.CreatedAt
	role.UpdatedAt = roleM.UpdatedAt

	return nil
}

// FindByID retrieves a role with its permissions preloaded.
func (repo *roleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Role, error) {
	var roleM model.RoleModel
	err := repo.db.WithContext(ctx).
		Preload("Permissions").
		Where("id = ?", id).
		First(&roleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by id")
	}

	return roleM.ToEntity(), nil
}

// List returns all roles with their permissions preloaded.
func (repo *roleRepository) List(ctx context.Context) ([]*entity.Role, error) {
	var roleMs []*model.RoleModel
	err := repo.db.WithContext(ctx).
		Preload("Permissions").
		Order("name").
		Find(&roleMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	roles := make([]*entity.Role, 0, len(roleMs))
	for _, roleM := range roleMs {
		roles = append(roles, roleM.ToEntity())
	}

	return roles, nil
}

// Update modifies the role row; the permission set is managed separately.
func (repo *roleRepository) Update(ctx context.Context, role *entity.Role) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RoleModel{}).
		Where("id = ?", role.ID).
		Updates(map[string]any{
			"name":        role.Name,
			"description": role.Description,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("role name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update role")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRoleNotFound
	}

	return nil
}

// Delete removes a role and its join rows.
func (repo *roleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	roleM := &model.RoleModel{ID: id}

	if err := repo.db.WithContext(ctx).Model(roleM).Association("Permissions").Clear(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear role permissions")
	}

	result := repo.db.WithContext(ctx).Delete(roleM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete role")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRoleNotFound
	}

	return nil
}

// ReplacePermissions rewrites the role's permission set to exactly the given IDs.
func (repo *roleRepository) ReplacePermissions(ctx context.Context, roleID uuid.UUID, permissionIDs []uuid.UUID) error {
	permMs := make([]*model.PermissionModel, 0, len(permissionIDs))
	for _, id := range permissionIDs {
		permMs = append(permMs, &model.PermissionModel{ID: id})
	}

	roleM := &model.RoleModel{ID: roleID}
	if err := repo.db.WithContext(ctx).Model(roleM).Association("Permissions").Replace(permMs); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPermissionNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to replace role permissions")
	}

	return nil
}

// AssignToUser links a role to a user.
func (repo *roleRepository) AssignToUser(ctx context.Context, roleID, userID uuid.UUID) error {
	userM := &model.UserModel{ID: userID}
	if err := repo.db.WithContext(ctx).Model(userM).Association("Roles").Append(&model.RoleModel{ID: roleID}); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRoleNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to assign role to user")
	}

	return nil
}

// RemoveFromUser unlinks a role from a user.
func (repo *roleRepository) RemoveFromUser(ctx context.Context, roleID, userID uuid.UUID) error {
	userM := &model.UserModel{ID: userID}
	if err := repo.db.WithContext(ctx).Model(userM).Association("Roles").Delete(&model.RoleModel{ID: roleID}); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove role from user")
	}

	return nil
}
