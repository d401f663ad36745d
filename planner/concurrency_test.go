// File: planner/concurrency_test.go
package planner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campwise/models"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestVersionedUpdateDayApplies(t *testing.T) {
	backend := newFakeBackend()
	updater := NewVersionedUpdater(backend, nil)

	day, err := backend.GetDay(context.Background(), "day-1")
	require.NoError(t, err)
	oldVersion := day.Version

	applied, err := updater.UpdateDay(context.Background(), day, models.DayPatch{Theme: strPtr("Water day")})
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, "Water day", day.Theme)
	assert.NotEqual(t, oldVersion, day.Version)
}

func TestVersionedUpdateDayConflictDiscardsDraft(t *testing.T) {
	backend := newFakeBackend()
	var notices []ConflictNotice
	updater := NewVersionedUpdater(backend, func(n ConflictNotice) {
		notices = append(notices, n)
	})

	day, err := backend.GetDay(context.Background(), "day-1")
	require.NoError(t, err)

	// Another client edits the day after our read.
	_, err = backend.UpdateDay(context.Background(), "day-1", models.DayPatch{Theme: strPtr("Remote theme")}, day.Version)
	require.NoError(t, err)

	applied, err := updater.UpdateDay(context.Background(), day, models.DayPatch{Theme: strPtr("My draft")})
	require.NoError(t, err)
	assert.False(t, applied)

	// The working copy now equals a fresh fetch; the draft is gone.
	fresh, err := backend.GetDay(context.Background(), "day-1")
	require.NoError(t, err)
	assert.Equal(t, *fresh, *day)
	assert.Equal(t, "Remote theme", day.Theme)

	require.Len(t, notices, 1)
	assert.Equal(t, "day", notices[0].Resource)
	assert.Equal(t, "day-1", notices[0].ID)
}

func TestVersionedUpdateTaskConflict(t *testing.T) {
	backend := newFakeBackend()
	backend.tasks["task-1"] = models.Task{
		ID: "task-1", GroupID: "group-1", Title: "Buy rope", Version: uuid.New().String(),
	}

	var notices []ConflictNotice
	updater := NewVersionedUpdater(backend, func(n ConflictNotice) {
		notices = append(notices, n)
	})

	task, err := backend.GetTask(context.Background(), "task-1")
	require.NoError(t, err)

	_, err = backend.UpdateTask(context.Background(), "task-1", models.TaskPatch{Done: boolPtr(true)}, task.Version)
	require.NoError(t, err)

	applied, err := updater.UpdateTask(context.Background(), task, models.TaskPatch{Title: strPtr("Buy more rope")})
	require.NoError(t, err)
	assert.False(t, applied)
	assert.True(t, task.Done)
	assert.Equal(t, "Buy rope", task.Title)
	require.Len(t, notices, 1)
	assert.Equal(t, "task", notices[0].Resource)
}

func TestVersionedUpdateNonConflictErrorLeavesCopy(t *testing.T) {
	backend := newFakeBackend()
	updater := NewVersionedUpdater(backend, nil)

	missing := &models.Task{ID: "nope", Version: "v"}
	applied, err := updater.UpdateTask(context.Background(), missing, models.TaskPatch{Done: boolPtr(true)})
	assert.False(t, applied)
	assert.Error(t, err)
	assert.Equal(t, "nope", missing.ID)
}
