package postgres

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"panel/internal/domain/entity"
	domainerrors "panel/internal/domain/errors"
	"panel/internal/domain/repository"
	"panel/internal/infra/persistence/model"
)

// vcodeRepository implements the domain.VCodeRepository interface using GORM.
type vcodeRepository struct {
	db *gorm.DB
}

// NewVCodeRepository is the constructor for vcodeRepository.
func NewVCodeRepository(db *gorm.DB) repository.VCodeRepository {
	return &vcodeRepository{db: db}
}

// Create inserts a new (owner, code, expiredAt) record.
func (repo *vcodeRepository) Create(ctx context.Context, vcode *entity.VCode) error {
	vcodeM := model.VCodeFromEntity(vcode)

	if err := repo.db.WithContext(ctx).Create(vcodeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// The same code was generated twice for one owner inside the
			// TTL window. Treat the existing row as authoritative.
			return nil
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create verification code")
	}

	vcode.CreatedAt = vcodeM.CreatedAt

	return nil
}

// Find performs an exact composite lookup.
func (repo *vcodeRepository) Find(ctx context.Context, owner, code string) (*entity.VCode, error) {
	var vcodeM model.VCodeModel
	err := repo.db.WithContext(ctx).
		Where("owner = ? AND code = ?", owner, code).
		First(&vcodeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find verification code")
	}

	return vcodeM.ToEntity(), nil
}

// Delete removes a record; ErrVCodeNotFound if absent.
func (repo *vcodeRepository) Delete(ctx context.Context, owner, code string) error {
	result := repo.db.WithContext(ctx).
		Where("owner = ? AND code = ?", owner, code).
		Delete(&model.VCodeModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete verification code")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVCodeNotFound
	}

	return nil
}

// Verify reports whether a matching record exists and is unexpired. The
// record is never consumed here.
func (repo *vcodeRepository) Verify(ctx context.Context, owner, code string) (bool, error) {
	vcode, err := repo.Find(ctx, owner, code)
	if err != nil {
		if errors.Is(err, repository.ErrVCodeNotFound) {
			return false, nil
		}

		return false, err
	}

	return vcode.Valid(time.Now()), nil
}
