package entity

import (
	"time"

	"github.com/google/uuid"
)

// OperationLog is one recorded admin request: who did what, where from,
// and how the request ended.
type OperationLog struct {
	ID        uuid.UUID  `json:"id"`
	UserID    *uuid.UUID `json:"user_id"`
	Method    string     `json:"method"`
	Path      string     `json:"path"`
	Status    int        `json:"status"`
	LatencyMs int64      `json:"latency_ms"`
	IP        string     `json:"ip"`
	UserAgent string     `json:"user_agent"`

	CreatedAt time.Time `json:"created_at"`
}
