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

// menuRepository implements the domain.MenuRepository interface using GORM.
type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository is the constructor for menuRepository.
func NewMenuRepository(db *gorm.DB) repository.MenuRepository {
	return &menuRepository{db: db}
}

func (repo *menuRepository) Create(ctx context.Context, menu *entity.Menu) error {
	menuM := model.MenuFromEntity(menu)

	if err := repo.db.WithContext(ctx).Create(menuM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMenuNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create menu")
	}

	menu.ID = menuM.ID
	menu.CreatedAt = menuM.CreatedAt
	menu.UpdatedAt = menuM.UpdatedAt

	return nil
}

func (repo *menuRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Menu, error) {
	var menuM model.MenuModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&menuM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMenuNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu")
	}

	return menuM.ToEntity(), nil
}

// List returns all menus ordered for tree assembly: parents before children
// is not guaranteed, but siblings come back in sort order.
func (repo *menuRepository) List(ctx context.Context) ([]*entity.Menu, error) {
	var menuMs []*model.MenuModel
	if err := repo.db.WithContext(ctx).Order("sort, name").Find(&menuMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list menus")
	}

	menus := make([]*entity.Menu, 0, len(menuMs))
	for _, menuM := range menuMs {
		menus = append(menus, menuM.ToEntity())
	}

	return menus, nil
}

func (repo *menuRepository) Update(ctx context.Context, menu *entity.Menu) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MenuModel{}).
		Where("id = ?", menu.ID).
		Updates(map[string]any{
			"name":      menu.Name,
			"path":      menu.Path,
			"icon":      menu.Icon,
			"parent_id": menu.ParentID,
			"sort":      menu.Sort,
			"hidden":    menu.Hidden,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update menu")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuNotFound
	}

	return nil
}

func (repo *menuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.MenuModel{ID: id})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete menu")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMenuNotFound
	}

	return nil
}
