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

// roleService implements the RoleUsecase interface.
type roleService struct {
	txManager repository.TransactionManager
	roleRepo  repository.RoleRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// RoleServiceParams holds dependencies for roleService, injected by Fx.
type RoleServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	RoleRepo  repository.RoleRepository
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewRoleService is the constructor for roleService.
func NewRoleService(params RoleServiceParams) usecase.RoleUsecase {
	return &roleService{
		txManager: params.TxManager,
		roleRepo:  params.RoleRepo,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *roleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *roleService) Create(ctx context.Context, input usecase.RoleInput) (*entity.Role, error) {
	role := &entity.Role{
		Name:        input.Name,
		Description: input.Description,
	}

	if err := srv.roleRepo.Create(ctx, role); err != nil {
		return nil, errors.Wrap(err, "failed to create role")
	}

	srv.log(ctx).Info("Role created", slog.Any("id", role.ID), slog.String("name", role.Name))

	return role, nil
}

func (srv *roleService) Get(ctx context.Context, id uuid.UUID) (*entity.Role, error) {
	role, err := srv.roleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("role not found")
		}

		return nil, errors.Wrap(err, "failed to get role")
	}

	return role, nil
}

func (srv *roleService) List(ctx context.Context) ([]*entity.Role, error) {
	roles, err := srv.roleRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	return roles, nil
}

func (srv *roleService) Update(ctx context.Context, id uuid.UUID, input usecase.RoleInput) (*entity.Role, error) {
	role := &entity.Role{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
	}

	if err := srv.roleRepo.Update(ctx, role); err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("role not found")
		}

		return nil, errors.Wrap(err, "failed to update role")
	}

	return srv.Get(ctx, id)
}

func (srv *roleService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.RoleRepo().Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("role not found")
		}

		return errors.Wrap(err, "failed to delete role")
	}

	return nil
}

// SetPermissions rewrites the role's permission set. Grants take effect for
// already-issued tokens only after their cache entries expire.
func (srv *roleService) SetPermissions(ctx context.Context, roleID uuid.UUID, permissionIDs []uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roleRepo := repoFactory.RoleRepo()

		if _, err := roleRepo.FindByID(ctx, roleID); err != nil {
			return err
		}

		return roleRepo.ReplacePermissions(ctx, roleID, permissionIDs)
	})
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("role not found")
		}
		if errors.Is(err, repository.ErrPermissionNotFound) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown permission in set")
		}

		return errors.Wrap(err, "failed to set role permissions")
	}

	srv.log(ctx).Info("Role permissions replaced", slog.Any("roleID", roleID), slog.Int("count", len(permissionIDs)))

	return nil
}

func (srv *roleService) Assign(ctx context.Context, roleID, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.UserRepo().FindByID(ctx, userID, false); err != nil {
			return err
		}
		if _, err := repoFactory.RoleRepo().FindByID(ctx, roleID); err != nil {
			return err
		}

		return repoFactory.RoleRepo().AssignToUser(ctx, roleID, userID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("user not found")
		}
		if errors.Is(err, repository.ErrRoleNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("role not found")
		}

		return errors.Wrap(err, "failed to assign role")
	}

	return nil
}

func (srv *roleService) Remove(ctx context.Context, roleID, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.RoleRepo().RemoveFromUser(ctx, roleID, userID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to remove role")
	}

	return nil
}

// permissionService implements the PermissionUsecase interface.
type permissionService struct {
	permRepo repository.PermissionRepository
	logger   *slog.Logger
}

// PermissionServiceParams holds dependencies for permissionService, injected by Fx.
type PermissionServiceParams struct {
	fx.In

	PermRepo repository.PermissionRepository
	Logger   *slog.Logger
}

// NewPermissionService is the constructor for permissionService.
func NewPermissionService(params PermissionServiceParams) usecase.PermissionUsecase {
	return &permissionService{
		permRepo: params.PermRepo,
		logger:   params.Logger,
	}
}

func (srv *permissionService) Create(ctx context.Context, input usecase.PermissionInput) (*entity.Permission, error) {
	perm := &entity.Permission{
		Name:        input.Name,
		Description: input.Description,
	}

	if err := srv.permRepo.Create(ctx, perm); err != nil {
		return nil, errors.Wrap(err, "failed to create permission")
	}

	return perm, nil
}

func (srv *permissionService) Get(ctx context.Context, id uuid.UUID) (*entity.Permission, error) {
	perm, err := srv.permRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPermissionNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("permission not found")
		}

		return nil, errors.Wrap(err, "failed to get permission")
	}

	return perm, nil
}

func (srv *permissionService) List(ctx context.Context) ([]*entity.Permission, error) {
	permissions, err := srv.permRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list permissions")
	}

	return permissions, nil
}

func (srv *permissionService) Update(ctx context.Context, id uuid.UUID, input usecase.PermissionInput) (*entity.Permission, error) {
	perm := &entity.Permission{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
	}

	if err := srv.permRepo.Update(ctx, perm); err != nil {
		if errors.Is(err, repository.ErrPermissionNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("permission not found")
		}

		return nil, errors.Wrap(err, "failed to update permission")
	}

	return srv.Get(ctx, id)
}

func (srv *permissionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.permRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPermissionNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("permission not found")
		}

		return errors.Wrap(err, "failed to delete permission")
	}

	return nil
}
