package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"panel/internal/domain/entity"
	"panel/internal/domain/repository"
	"panel/internal/usecase"
)

// operationLogService implements the OperationLogUsecase interface.
type operationLogService struct {
	logRepo repository.OperationLogRepository
	logger  *slog.Logger
}

// OperationLogServiceParams holds dependencies for operationLogService, injected by Fx.
type OperationLogServiceParams struct {
	fx.In

	LogRepo repository.OperationLogRepository
	Logger  *slog.Logger
}

// NewOperationLogService is the constructor for operationLogService.
func NewOperationLogService(params OperationLogServiceParams) usecase.OperationLogUsecase {
	return &operationLogService{
		logRepo: params.LogRepo,
		logger:  params.Logger,
	}
}

// Record appends one request record. Failures are logged but surfaced so
// the middleware can decide whether to care.
func (srv *operationLogService) Record(ctx context.Context, logEntry *entity.OperationLog) error {
	if err := srv.logRepo.Create(ctx, logEntry); err != nil {
		srv.logger.Warn("Failed to record operation log",
			slog.String("path", logEntry.Path),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to record operation log")
	}

	return nil
}

// List returns recent records, newest first.
func (srv *operationLogService) List(ctx context.Context, limit, offset int) ([]*entity.OperationLog, error) {
	logs, err := srv.logRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list operation logs")
	}

	return logs, nil
}
