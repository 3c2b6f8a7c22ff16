package model

import (
	"time"

	"github.com/google/uuid"

	"panel/internal/domain/entity"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email           string    `gorm:"type:varchar(255);unique;not null"`
	Name            string    `gorm:"type:varchar(100)"`
	PasswordHash    string    `gorm:"type:varchar(255)"`
	EmailVerifiedAt *time.Time
	Disabled        bool `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Accounts []AccountModel `gorm:"foreignKey:UserID"`
	Roles    []*RoleModel   `gorm:"many2many:user_roles;joinForeignKey:UserID;joinReferences:RoleID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts the persistence model to the domain entity. Associations
// are converted only when they are loaded.
func (m *UserModel) ToEntity() *entity.User {
	user := &entity.User{
		ID:              m.ID,
		Email:           m.Email,
		Name:            m.Name,
		PasswordHash:    m.PasswordHash,
		EmailVerifiedAt: m.EmailVerifiedAt,
		Disabled:        m.Disabled,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}

	for _, role := range m.Roles {
		user.Roles = append(user.Roles, role.ToEntity())
	}

	return user
}

// UserFromEntity converts the domain entity to the persistence model.
// Associations are managed through their own repositories, never here.
func UserFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:              user.ID,
		Email:           user.Email,
		Name:            user.Name,
		PasswordHash:    user.PasswordHash,
		EmailVerifiedAt: user.EmailVerifiedAt,
		Disabled:        user.Disabled,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}

// AccountModel mirrors the 'accounts' table. The (provider, provider_account_id)
// pair is the natural key for credential lookups.
type AccountModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID                uuid.UUID `gorm:"type:uuid;not null"`
	Provider              string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_accounts_provider_provider_account_id"`
	ProviderAccountID     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_accounts_provider_provider_account_id"`
	AccessToken           string    `gorm:"type:text"`
	RefreshToken          string    `gorm:"type:text"`
	AccessTokenExpiredAt  *time.Time
	RefreshTokenExpiredAt *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToEntity converts the persistence model to the domain entity.
func (m *AccountModel) ToEntity() *entity.Account {
	return &entity.Account{
		ID:                    m.ID,
		UserID:                m.UserID,
		Provider:              entity.ProviderType(m.Provider),
		ProviderAccountID:     m.ProviderAccountID,
		AccessToken:           m.AccessToken,
		RefreshToken:          m.RefreshToken,
		AccessTokenExpiredAt:  m.AccessTokenExpiredAt,
		RefreshTokenExpiredAt: m.RefreshTokenExpiredAt,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

// AccountFromEntity converts the domain entity to the persistence model.
func AccountFromEntity(account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:                    account.ID,
		UserID:                account.UserID,
		Provider:              account.Provider.String(),
		ProviderAccountID:     account.ProviderAccountID,
		AccessToken:           account.AccessToken,
		RefreshToken:          account.RefreshToken,
		AccessTokenExpiredAt:  account.AccessTokenExpiredAt,
		RefreshTokenExpiredAt: account.RefreshTokenExpiredAt,
		CreatedAt:             account.CreatedAt,
		UpdatedAt:             account.UpdatedAt,
	}
}
