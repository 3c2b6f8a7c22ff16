package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "panel/internal/delivery/context"
	"panel/internal/domain/entity"
	domainerrors "panel/internal/domain/errors"
	"panel/internal/domain/repository"
	"panel/internal/usecase"
)

// menuService implements the MenuUsecase interface.
type menuService struct {
	menuRepo repository.MenuRepository
	logger   *slog.Logger
}

// MenuServiceParams holds dependencies for menuService, injected by Fx.
type MenuServiceParams struct {
	fx.In

	MenuRepo repository.MenuRepository
	Logger   *slog.Logger
}

// NewMenuService is the constructor for menuService.
func NewMenuService(params MenuServiceParams) usecase.MenuUsecase {
	return &menuService{
		menuRepo: params.MenuRepo,
		logger:   params.Logger,
	}
}

func (srv *menuService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *menuService) Create(ctx context.Context, input usecase.MenuInput) (*entity.Menu, error) {
	if input.ParentID != nil {
		if _, err := srv.menuRepo.FindByID(ctx, *input.ParentID); err != nil {
			if errors.Is(err, repository.ErrMenuNotFound) {
				return nil, domainerrors.ErrValidationFailed.WrapMessage("parent menu does not exist")
			}

			return nil, errors.Wrap(err, "failed to check parent menu")
		}
	}

	menu := &entity.Menu{
		Name:     input.Name,
		Path:     input.Path,
		Icon:     input.Icon,
		ParentID: input.ParentID,
		Sort:     input.Sort,
		Hidden:   input.Hidden,
	}

	if err := srv.menuRepo.Create(ctx, menu); err != nil {
		return nil, errors.Wrap(err, "failed to create menu")
	}

	srv.log(ctx).Info("Menu created", slog.Any("id", menu.ID), slog.String("path", menu.Path))

	return menu, nil
}

func (srv *menuService) Get(ctx context.Context, id uuid.UUID) (*entity.Menu, error) {
	menu, err := srv.menuRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMenuNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("menu not found")
		}

		return nil, errors.Wrap(err, "failed to get menu")
	}

	return menu, nil
}

func (srv *menuService) List(ctx context.Context) ([]*entity.Menu, error) {
	menus, err := srv.menuRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menus")
	}

	return menus, nil
}

func (srv *menuService) Update(ctx context.Context, id uuid.UUID, input usecase.MenuInput) (*entity.Menu, error) {
	if input.ParentID != nil && *input.ParentID == id {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("menu cannot be its own parent")
	}

	menu := &entity.Menu{
		ID:       id,
		Name:     input.Name,
		Path:     input.Path,
		Icon:     input.Icon,
		ParentID: input.ParentID,
		Sort:     input.Sort,
		Hidden:   input.Hidden,
	}

	if err := srv.menuRepo.Update(ctx, menu); err != nil {
		if errors.Is(err, repository.ErrMenuNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("menu not found")
		}

		return nil, errors.Wrap(err, "failed to update menu")
	}

	return srv.Get(ctx, id)
}

func (srv *menuService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.menuRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMenuNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("menu not found")
		}

		return errors.Wrap(err, "failed to delete menu")
	}

	return nil
}
