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

// dictionaryRepository implements the domain.DictionaryRepository interface using GORM.
type dictionaryRepository struct {
	db *gorm.DB
}

// NewDictionaryRepository is the constructor for dictionaryRepository.
func NewDictionaryRepository(db *gorm.DB) repository.DictionaryRepository {
	return &dictionaryRepository{db: db}
}

func (repo *dictionaryRepository) Create(ctx context.Context, dict *entity.Dictionary) error {
	dictM := model.DictionaryFromEntity(dict)

	if err := repo.db.WithContext(ctx).Create(dictM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create dictionary entry")
	}

	dict.ID = dictM.ID
	dict.CreatedAt = dictM.CreatedAt
	dict.UpdatedAt = dictM.UpdatedAt

	return nil
}

func (repo *dictionaryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Dictionary, error) {
	var dictM model.DictionaryModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&dictM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDictionaryNotFound
		}

		return nil, errors.Wrap(err, "failed to find dictionary entry")
	}

	return dictM.ToEntity(), nil
}

func (repo *dictionaryRepository) List(ctx context.Context) ([]*entity.Dictionary, error) {
	var dictMs []*model.DictionaryModel
	if err := repo.db.WithContext(ctx).Order("key").Find(&dictMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list dictionary entries")
	}

	dicts := make([]*entity.Dictionary, 0, len(dictMs))
	for _, dictM := range dictMs {
		dicts = append(dicts, dictM.ToEntity())
	}

	return dicts, nil
}

func (repo *dictionaryRepository) Update(ctx context.Context, dict *entity.Dictionary) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DictionaryModel{}).
		Where("id = ?", dict.ID).
		Updates(map[string]any{
			"key":    dict.Key,
			"label":  dict.Label,
			"value":  dict.Value,
			"remark": dict.Remark,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update dictionary entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDictionaryNotFound
	}

	return nil
}

func (repo *dictionaryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.DictionaryModel{ID: id})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete dictionary entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDictionaryNotFound
	}

	return nil
}
