package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "panel/internal/delivery/context"
	"panel/internal/domain/entity"
	domainerrors "panel/internal/domain/errors"
	"panel/internal/domain/repository"
	"panel/internal/usecase"
)

// resourceService implements the ResourceUsecase interface.
type resourceService struct {
	resRepo repository.ResourceRepository
	logger  *slog.Logger
}

// ResourceServiceParams holds dependencies for resourceService, injected by Fx.
type ResourceServiceParams struct {
	fx.In

	ResRepo repository.ResourceRepository
	Logger  *slog.Logger
}

// NewResourceService is the constructor for resourceService.
func NewResourceService(params ResourceServiceParams) usecase.ResourceUsecase {
	return &resourceService{
		resRepo: params.ResRepo,
		logger:  params.Logger,
	}
}

func (srv *resourceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *resourceService) Create(ctx context.Context, input usecase.ResourceInput) (*entity.Resource, error) {
	res := &entity.Resource{
		Name:   input.Name,
		Path:   input.Path,
		Method: strings.ToUpper(input.Method),
		Remark: input.Remark,
	}

	if err := srv.resRepo.Create(ctx, res); err != nil {
		return nil, errors.Wrap(err, "failed to create resource")
	}

	srv.log(ctx).Info("Resource created", slog.Any("id", res.ID), slog.String("path", res.Path))

	return res, nil
}

func (srv *resourceService) Get(ctx context.Context, id uuid.UUID) (*entity.Resource, error) {
	res, err := srv.resRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrResourceNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("resource not found")
		}

		return nil, errors.Wrap(err, "failed to get resource")
	}

	return res, nil
}

func (srv *resourceService) List(ctx context.Context) ([]*entity.Resource, error) {
	resources, err := srv.resRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list resources")
	}

	return resources, nil
}

func (srv *resourceService) Update(ctx context.Context, id uuid.UUID, input usecase.ResourceInput) (*entity.Resource, error) {
	res := &entity.Resource{
		ID:     id,
		Name:   input.Name,
		Path:   input.Path,
		Method: strings.ToUpper(input.Method),
		Remark: input.Remark,
	}

	if err := srv.resRepo.Update(ctx, res); err != nil {
		if errors.Is(err, repository.ErrResourceNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("resource not found")
		}

		return nil, errors.Wrap(err, "failed to update resource")
	}

	return srv.Get(ctx, id)
}

func (srv *resourceService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.resRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrResourceNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("resource not found")
		}

		return errors.Wrap(err, "failed to delete resource")
	}

	return nil
}
