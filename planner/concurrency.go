// File: planner/concurrency.go
package planner

import (
	"context"
	"errors"
	"fmt"

	"campwise/models"
)

// ConflictNotice describes a rejected versioned update, surfaced to the
// user as "your change could not be applied, the record was refreshed".
type ConflictNotice struct {
	Resource string // "day" or "task"
	ID       string
}

// VersionedUpdater wraps whole-resource updates for version-tracked records
// (days and tasks). Every write carries the token the resource was last
// read with; on rejection the canonical copy is refetched and the caller's
// draft is replaced, never merged.
//
// Slot time-range autosave bypasses this path, see Backend.
type VersionedUpdater struct {
	backend    Backend
	onConflict func(ConflictNotice)
}

// NewVersionedUpdater builds an updater. onConflict may be nil.
func NewVersionedUpdater(backend Backend, onConflict func(ConflictNotice)) *VersionedUpdater {
	return &VersionedUpdater{backend: backend, onConflict: onConflict}
}

// UpdateDay attempts a versioned day update. On success day is replaced
// with the new canonical copy and applied is true. On a version conflict the
// notice fires, day is replaced with the refetched canonical copy (the draft
// is lost) and applied is false with a nil error.
// Non-conflict failures leave day untouched and are returned to the caller.
func (u *VersionedUpdater) UpdateDay(ctx context.Context, day *models.CampDay, patch models.DayPatch) (applied bool, err error) {
	updated, err := u.backend.UpdateDay(ctx, day.ID, patch, day.Version)
	if err == nil {
		*day = *updated
		return true, nil
	}
	if !errors.Is(err, ErrVersionConflict) {
		return false, err
	}

	u.notify(ConflictNotice{Resource: "day", ID: day.ID})
	canonical, ferr := u.backend.GetDay(ctx, day.ID)
	if ferr != nil {
		return false, fmt.Errorf("failed to refetch day after conflict: %w", ferr)
	}
	*day = *canonical
	return false, nil
}

// UpdateTask is the task-side twin of UpdateDay.
func (u *VersionedUpdater) UpdateTask(ctx context.Context, task *models.Task, patch models.TaskPatch) (applied bool, err error) {
	updated, err := u.backend.UpdateTask(ctx, task.ID, patch, task.Version)
	if err == nil {
		*task = *updated
		return true, nil
	}
	if !errors.Is(err, ErrVersionConflict) {
		return false, err
	}

	u.notify(ConflictNotice{Resource: "task", ID: task.ID})
	canonical, ferr := u.backend.GetTask(ctx, task.ID)
	if ferr != nil {
		return false, fmt.Errorf("failed to refetch task after conflict: %w", ferr)
	}
	*task = *canonical
	return false, nil
}

func (u *VersionedUpdater) notify(n ConflictNotice) {
	if u.onConflict != nil {
		u.onConflict(n)
	}
}
