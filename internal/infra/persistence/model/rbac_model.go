package model

import (
	"time"

	"github.com/google/uuid"

	"panel/internal/domain/entity"
)

// RoleModel mirrors the 'roles' table.
type RoleModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name        string    `gorm:"type:varchar(100);unique;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Permissions []*PermissionModel `gorm:"many2many:role_permissions;joinForeignKey:RoleID;joinReferences:PermissionID"`
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

// ToEntity converts the persistence model to the domain entity.
func (m *RoleModel) ToEntity() *entity.Role {
	role := &entity.Role{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	for _, perm := range m.Permissions {
		role.Permissions = append(role.Permissions, perm.ToEntity())
	}

	return role
}

// RoleFromEntity converts the domain entity to the persistence model.
func RoleFromEntity(role *entity.Role) *RoleModel {
	return &RoleModel{
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
		CreatedAt:   role.CreatedAt,
		UpdatedAt:   role.UpdatedAt,
	}
}

// PermissionModel mirrors the 'permissions' table.
type PermissionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name        string    `gorm:"type:varchar(100);unique;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PermissionModel) TableName() string {
	return "permissions"
}

// ToEntity converts the persistence model to the domain entity.
func (m *PermissionModel) ToEntity() *entity.Permission {
	return &entity.Permission{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// PermissionFromEntity converts the domain entity to the persistence model.
func PermissionFromEntity(perm *entity.Permission) *PermissionModel {
	return &PermissionModel{
		ID:          perm.ID,
		Name:        perm.Name,
		Description: perm.Description,
		CreatedAt:   perm.CreatedAt,
		UpdatedAt:   perm.UpdatedAt,
	}
}
