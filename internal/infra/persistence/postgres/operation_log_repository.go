package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"panel/internal/domain/entity"
	domainerrors "panel/internal/domain/errors"
	"panel/internal/domain/repository"
	"panel/internal/infra/persistence/model"
)

const defaultOperationLogPageSize = 50

// operationLogRepository implements the domain.OperationLogRepository interface using GORM.
type operationLogRepository struct {
	db *gorm.DB
}

// NewOperationLogRepository is the constructor for operationLogRepository.
func NewOperationLogRepository(db *gorm.DB) repository.OperationLogRepository {
	return &operationLogRepository{db: db}
}

// Create appends one request record.
func (repo *operationLogRepository) Create(ctx context.Context, logEntry *entity.OperationLog) error {
	logM := model.OperationLogFromEntity(logEntry)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create operation log")
	}

	logEntry.ID = logM.ID
	logEntry.CreatedAt = logM.CreatedAt

	return nil
}

// List returns recent records, newest first.
func (repo *operationLogRepository) List(ctx context.Context, limit, offset int) ([]*entity.OperationLog, error) {
	if limit <= 0 {
		limit = defaultOperationLogPageSize
	}
	if offset < 0 {
		offset = 0
	}

	var logMs []*model.OperationLogModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list operation logs")
	}

	logs := make([]*entity.OperationLog, 0, len(logMs))
	for _, logM := range logMs {
		logs = append(logs, logM.ToEntity())
	}

	return logs, nil
}
