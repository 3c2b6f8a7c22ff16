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

// dictionaryService implements the DictionaryUsecase interface.
type dictionaryService struct {
	dictRepo repository.DictionaryRepository
	logger   *slog.Logger
}

// DictionaryServiceParams holds dependencies for dictionaryService, injected by Fx.
type DictionaryServiceParams struct {
	fx.In

	DictRepo repository.DictionaryRepository
	Logger   *slog.Logger
}

// NewDictionaryService is the constructor for dictionaryService.
func NewDictionaryService(params DictionaryServiceParams) usecase.DictionaryUsecase {
	return &dictionaryService{
		dictRepo: params.DictRepo,
		logger:   params.Logger,
	}
}

func (srv *dictionaryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *dictionaryService) Create(ctx context.Context, input usecase.DictionaryInput) (*entity.Dictionary, error) {
	dict := &entity.Dictionary{
		Key:    input.Key,
		Label:  input.Label,
		Value:  input.Value,
		Remark: input.Remark,
	}

	if err := srv.dictRepo.Create(ctx, dict); err != nil {
		return nil, errors.Wrap(err, "failed to create dictionary entry")
	}

	srv.log(ctx).Info("Dictionary entry created", slog.Any("id", dict.ID), slog.String("key", dict.Key))

	return dict, nil
}

func (srv *dictionaryService) Get(ctx context.Context, id uuid.UUID) (*entity.Dictionary, error) {
	dict, err := srv.dictRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDictionaryNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("dictionary entry not found")
		}

		return nil, errors.Wrap(err, "failed to get dictionary entry")
	}

	return dict, nil
}

func (srv *dictionaryService) List(ctx context.Context) ([]*entity.Dictionary, error) {
	dicts, err := srv.dictRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list dictionary entries")
	}

	return dicts, nil
}

func (srv *dictionaryService) Update(ctx context.Context, id uuid.UUID, input usecase.DictionaryInput) (*entity.Dictionary, error) {
	dict := &entity.Dictionary{
		ID:     id,
		Key:    input.Key,
		Label:  input.Label,
		Value:  input.Value,
		Remark: input.Remark,
	}

	if err := srv.dictRepo.Update(ctx, dict); err != nil {
		if errors.Is(err, repository.ErrDictionaryNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("dictionary entry not found")
		}

		return nil, errors.Wrap(err, "failed to update dictionary entry")
	}

	return srv.Get(ctx, id)
}

func (srv *dictionaryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.dictRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDictionaryNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("dictionary entry not found")
		}

		return errors.Wrap(err, "failed to delete dictionary entry")
	}

	return nil
}
