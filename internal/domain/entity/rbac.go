package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role is a named grouping of permissions. Users and roles form a
// many-to-many relationship, as do roles and permissions.
type Role struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`

	Permissions []*Permission `json:"permissions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Permission is a named capability. Guard checks match permission names
// case-sensitively; there is no code or bitmask semantics here.
type Permission struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
