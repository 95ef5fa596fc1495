package services

import (
	"github.com/google/uuid"
)

// ProgressEvent is one step of a running import, pushed to any connected
// progress listeners.
type ProgressEvent struct {
	RunID uuid.UUID  `json:"run_id,omitempty"`
	Stage string     `json:"stage"`
	Kind  EntityKind `json:"kind,omitempty"`
	Row   int        `json:"row,omitempty"`
	Total int        `json:"total,omitempty"`
}

// ProgressNotifier receives pipeline progress. Publish must not block the
// pipeline; implementations drop events rather than stall a run.
type ProgressNotifier interface {
	Publish(event ProgressEvent)
}
