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

// resourceRepository implements the domain.ResourceRepository interface using GORM.
type resourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository is the constructor for resourceRepository.
func NewResourceRepository(db *gorm.DB) repository.ResourceRepository {
	return &resourceRepository{db: db}
}

func (repo *resourceRepository) Create(ctx context.Context, res *entity.Resource) error {
	resM := model.ResourceFromEntity(res)

	if err := repo.db.WithContext(ctx).Create(resM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("resource path and method already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create resource")
	}

	res.ID = resM.ID
	res.CreatedAt = resM.CreatedAt
	res.UpdatedAt = resM.UpdatedAt

	return nil
}

func (repo *resourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Resource, error) {
	var resM model.ResourceModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&resM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResourceNotFound
		}

		return nil, errors.Wrap(err, "failed to find resource")
	}

	return resM.ToEntity(), nil
}

func (repo *resourceRepository) List(ctx context.Context) ([]*entity.Resource, error) {
	var resMs []*model.ResourceModel
	if err := repo.db.WithContext(ctx).Order("path, method").Find(&resMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list resources")
	}

	resources := make([]*entity.Resource, 0, len(resMs))
	for _, resM := range resMs {
		resources = append(resources, resM.ToEntity())
	}

	return resources, nil
}

func (repo *resourceRepository) Update(ctx context.Context, res *entity.Resource) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ResourceModel{}).
		Where("id = ?", res.ID).
		Updates(map[string]any{
			"name":   res.Name,
			"path":   res.Path,
			"method": res.Method,
			"remark": res.Remark,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("resource path and method already registered")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update resource")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResourceNotFound
	}

	return nil
}

func (repo *resourceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ResourceModel{ID: id})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete resource")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResourceNotFound
	}

	return nil
}
