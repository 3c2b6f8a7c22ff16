package entity

import (
	"time"

	"github.com/google/uuid"
)

// Resource describes an API surface entry (path + method) that can be
// granted to roles through permissions.
type Resource struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Path   string    `json:"path"`
	Method string    `json:"method"`
	Remark string    `json:"remark"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
