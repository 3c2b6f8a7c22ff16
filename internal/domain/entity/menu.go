package entity

import (
	"time"

	"github.com/google/uuid"
)

// Menu is a navigation entry of the dashboard. Menus form a tree through
// ParentID; Sort orders siblings.
type Menu struct {
	ID       uuid.UUID  `json:"id"`
	Name     string     `json:"name"`
	Path     string     `json:"path"`
	Icon     string     `json:"icon"`
	ParentID *uuid.UUID `json:"parent_id"`
	Sort     int        `json:"sort"`
	Hidden   bool       `json:"hidden"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
