// File: planner/planner_test.go
package planner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"campwise/models"
)

// fakeBackend is an in-memory Backend with scriptable failures, shared by
// the planner tests.
type fakeBackend struct {
	mu         sync.Mutex
	day        models.CampDay
	entries    map[string]models.ScheduleEntry
	activities map[string]models.Activity
	tasks      map[string]models.Task

	entryUpdates []recordedUpdate
	listCalls    int

	failListEntries   bool
	failEntryUpdate   bool
	failActivityTitle string        // CreateActivity fails for this title
	updateDelay       time.Duration // simulated latency for UpdateEntry
}

type recordedUpdate struct {
	entryID string
	patch   models.EntryPatch
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		day: models.CampDay{
			ID:        "day-1",
			GroupID:   "group-1",
			DayNumber: 1,
			Date:      "2026-07-14",
			Theme:     "Forest day",
			Version:   uuid.New().String(),
		},
		entries:    make(map[string]models.ScheduleEntry),
		activities: make(map[string]models.Activity),
		tasks:      make(map[string]models.Task),
	}
}

func (f *fakeBackend) addEntry(start, end string, order int) models.ScheduleEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := models.ScheduleEntry{
		ID:         uuid.New().String(),
		DayID:      f.day.ID,
		ActivityID: "act-" + fmt.Sprint(order),
		Start:      start,
		End:        end,
		OrderInDay: order,
	}
	f.entries[e.ID] = e
	return e
}

func (f *fakeBackend) GetDay(ctx context.Context, dayID string) (*models.CampDay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if dayID != f.day.ID {
		return nil, errors.New("day not found")
	}
	d := f.day
	return &d, nil
}

func (f *fakeBackend) UpdateDay(ctx context.Context, dayID string, patch models.DayPatch, version string) (*models.CampDay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if version != f.day.Version {
		return nil, ErrVersionConflict
	}
	if patch.Date != nil {
		f.day.Date = *patch.Date
	}
	if patch.Theme != nil {
		f.day.Theme = *patch.Theme
	}
	f.day.Version = uuid.New().String()
	d := f.day
	return &d, nil
}

func (f *fakeBackend) ListEntries(ctx context.Context, dayID string) ([]models.ScheduleEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.failListEntries {
		return nil, errors.New("backend unavailable")
	}
	out := make([]models.ScheduleEntry, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeBackend) CreateEntry(ctx context.Context, dayID string, req models.CreateEntryRequest) (*models.ScheduleEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := models.ScheduleEntry{
		ID:         uuid.New().String(),
		DayID:      dayID,
		ActivityID: req.ActivityID,
		Start:      req.Start,
		End:        req.End,
		OrderInDay: req.OrderInDay,
	}
	f.entries[e.ID] = e
	return &e, nil
}

func (f *fakeBackend) UpdateEntry(ctx context.Context, entryID string, patch models.EntryPatch) (*models.ScheduleEntry, error) {
	f.mu.Lock()
	delay := f.updateDelay
	f.mu.Unlock()
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.entryUpdates = append(f.entryUpdates, recordedUpdate{entryID: entryID, patch: patch})
	if f.failEntryUpdate {
		return nil, errors.New("backend unavailable")
	}
	e, ok := f.entries[entryID]
	if !ok {
		return nil, errors.New("entry not found")
	}
	if patch.Start != nil {
		e.Start = *patch.Start
	}
	if patch.End != nil {
		e.End = *patch.End
	}
	if patch.OrderInDay != nil {
		e.OrderInDay = *patch.OrderInDay
	}
	f.entries[entryID] = e
	return &e, nil
}

func (f *fakeBackend) DeleteEntry(ctx context.Context, entryID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.entries[entryID]; !ok {
		return errors.New("entry not found")
	}
	delete(f.entries, entryID)
	return nil
}

func (f *fakeBackend) CreateActivity(ctx context.Context, groupID string, req models.CreateActivityRequest) (*models.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if req.Title == f.failActivityTitle {
		return nil, errors.New("activity service unavailable")
	}
	a := models.Activity{
		ID:      uuid.New().String(),
		GroupID: groupID,
		Title:   req.Title,
		Status:  req.Status,
	}
	f.activities[a.ID] = a
	return &a, nil
}

func (f *fakeBackend) GetActivitySummary(ctx context.Context, activityID string) (*models.ActivitySummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.activities[activityID]
	if !ok {
		return nil, errors.New("activity not found")
	}
	s := a.Summary()
	return &s, nil
}

func (f *fakeBackend) GetTask(ctx context.Context, taskID string) (*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tasks[taskID]
	if !ok {
		return nil, errors.New("task not found")
	}
	return &t, nil
}

func (f *fakeBackend) UpdateTask(ctx context.Context, taskID string, patch models.TaskPatch, version string) (*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tasks[taskID]
	if !ok {
		return nil, errors.New("task not found")
	}
	if version != t.Version {
		return nil, ErrVersionConflict
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Done != nil {
		t.Done = *patch.Done
	}
	t.Version = uuid.New().String()
	f.tasks[taskID] = t
	return &t, nil
}

func (f *fakeBackend) recordedUpdates() []recordedUpdate {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]recordedUpdate, len(f.entryUpdates))
	copy(out, f.entryUpdates)
	return out
}

func (f *fakeBackend) listCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

var editor = models.Capability{CanEdit: true, CanDeleteDay: true}
