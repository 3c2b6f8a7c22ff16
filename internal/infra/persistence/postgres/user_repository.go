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

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID. With hydrate the
// role/permission graph is preloaded and denormalized onto the entity.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID, hydrate bool) (*entity.User, error) {
	query := repo.db.WithContext(ctx)
	if hydrate {
		query = query.Preload("Roles.Permissions")
	}

	var userM model.UserModel
	if err := query.Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return repo.toDomain(&userM, hydrate), nil
}

// FindByEmail retrieves a single user by their email address, with the same
// hydration semantics as FindByID.
func (repo *userRepository) FindByEmail(ctx context.Context, email string, hydrate bool) (*entity.User, error) {
	query := repo.db.WithContext(ctx)
	if hydrate {
		query = query.Preload("Roles.Permissions")
	}

	var userM model.UserModel
	if err := query.Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return repo.toDomain(&userM, hydrate), nil
}

// Create persists a new user together with its first linked provider account.
// The two inserts are not atomic on their own; callers run this inside
// txManager.Execute.
func (repo *userRepository) Create(ctx context.Context, user *entity.User, account *entity.Account) error {
	userM := model.UserFromEntity(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	if account == nil {
		return nil
	}

	account.UserID = userM.ID
	accountM := model.AccountFromEntity(account)
	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("provider account already linked")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update modifies the user row. Role assignments are managed through the
// role repository, never by updating here.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := model.UserFromEntity(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":              userM.Name,
			"password_hash":     userM.PasswordHash,
			"email_verified_at": userM.EmailVerifiedAt,
			"disabled":          userM.Disabled,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateAccountTokens stores freshly issued provider tokens on the account
// identified by the (provider, providerAccountID) composite key.
func (repo *userRepository) UpdateAccountTokens(ctx context.Context, provider entity.ProviderType, providerAccountID string, tokens *entity.TokenPair) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("provider = ? AND provider_account_id = ?", provider.String(), providerAccountID).
		Updates(map[string]any{
			"access_token":             tokens.AccessToken,
			"refresh_token":            tokens.RefreshToken,
			"access_token_expired_at":  tokens.AccessTokenExpiredAt,
			"refresh_token_expired_at": tokens.RefreshTokenExpiredAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update account tokens")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// toDomain maps the persistence model to the domain entity and, when the
// access graph was loaded, denormalizes role and permission names.
func (repo *userRepository) toDomain(userM *model.UserModel, hydrated bool) *entity.User {
	user := userM.ToEntity()
	if hydrated {
		user.DenormalizeAccess()
	}

	return user
}
