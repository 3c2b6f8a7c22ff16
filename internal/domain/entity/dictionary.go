package entity

import (
	"time"

	"github.com/google/uuid"
)

// Dictionary is a keyed lookup entry used by the dashboard frontend for
// enumerations (statuses, categories and the like).
type Dictionary struct {
	ID     uuid.UUID `json:"id"`
	Key    string    `json:"key"`
	Label  string    `json:"label"`
	Value  string    `json:"value"`
	Remark string    `json:"remark"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
