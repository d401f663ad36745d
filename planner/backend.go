// File: planner/backend.go
package planner

import (
	"context"
	"errors"

	"campwise/models"
)

// ErrVersionConflict is returned by Backend implementations when a
// version-tracked update presented a stale token. The canonical copy must be
// refetched; drafts for that resource are discarded, never merged.
var ErrVersionConflict = errors.New("resource was modified by a concurrent edit")

// Backend is the planner's view of the scheduling API. HTTPBackend binds it
// to the real server; tests use in-memory fakes.
//
// Day and task updates carry the version token they were last read with and
// fail with ErrVersionConflict on mismatch. Entry updates are plain: the
// autosave queue already serializes writes per slot, and version-checking
// every debounced patch would surface conflicts during normal drag-editing.
type Backend interface {
	GetDay(ctx context.Context, dayID string) (*models.CampDay, error)
	UpdateDay(ctx context.Context, dayID string, patch models.DayPatch, version string) (*models.CampDay, error)

	ListEntries(ctx context.Context, dayID string) ([]models.ScheduleEntry, error)
	CreateEntry(ctx context.Context, dayID string, req models.CreateEntryRequest) (*models.ScheduleEntry, error)
	UpdateEntry(ctx context.Context, entryID string, patch models.EntryPatch) (*models.ScheduleEntry, error)
	DeleteEntry(ctx context.Context, entryID string) error

	CreateActivity(ctx context.Context, groupID string, req models.CreateActivityRequest) (*models.Activity, error)
	GetActivitySummary(ctx context.Context, activityID string) (*models.ActivitySummary, error)

	GetTask(ctx context.Context, taskID string) (*models.Task, error)
	UpdateTask(ctx context.Context, taskID string, patch models.TaskPatch, version string) (*models.Task, error)
}
