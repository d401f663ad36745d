// File: planner/autosave_test.go
package planner

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campwise/models"
)

const testDebounce = 25 * time.Millisecond

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestAutosaveDebouncesToOneWrite(t *testing.T) {
	backend := newFakeBackend()
	e := backend.addEntry("09:00", "10:00", 1)

	q := NewAutosaveQueue(backend, e.ID, testDebounce, nil, nil)
	defer q.Close()

	// Three rapid edits within the debounce window.
	q.Queue(TimePatch{Start: "09:05", End: "10:00"})
	q.Queue(TimePatch{Start: "09:10", End: "10:00"})
	q.Queue(TimePatch{Start: "09:15", End: "10:15"})

	waitFor(t, func() bool { return len(backend.recordedUpdates()) == 1 })
	time.Sleep(3 * testDebounce) // no trailing writes

	updates := backend.recordedUpdates()
	require.Len(t, updates, 1)
	assert.Equal(t, "09:15", *updates[0].patch.Start)
	assert.Equal(t, "10:15", *updates[0].patch.End)
	assert.Equal(t, SaveSaved, q.State())
}

func TestAutosaveInFlightThenLatest(t *testing.T) {
	backend := newFakeBackend()
	e := backend.addEntry("09:00", "10:00", 1)
	backend.updateDelay = 4 * testDebounce

	q := NewAutosaveQueue(backend, e.ID, testDebounce, nil, nil)
	defer q.Close()

	q.Queue(TimePatch{Start: "09:05", End: "10:00"})
	// Let the first write take off, then pile on two more edits while it
	// is in flight.
	time.Sleep(2 * testDebounce)
	q.Queue(TimePatch{Start: "09:10", End: "10:00"})
	q.Queue(TimePatch{Start: "09:20", End: "10:20"})

	waitFor(t, func() bool { return len(backend.recordedUpdates()) == 2 })
	time.Sleep(3 * testDebounce)

	// Exactly two writes: the original and the latest desired state. The
	// intermediate 09:10 edit was never sent.
	updates := backend.recordedUpdates()
	require.Len(t, updates, 2)
	assert.Equal(t, "09:05", *updates[0].patch.Start)
	assert.Equal(t, "09:20", *updates[1].patch.Start)
}

func TestAutosaveReportsCanonicalEntry(t *testing.T) {
	backend := newFakeBackend()
	e := backend.addEntry("09:00", "10:00", 1)

	var mu sync.Mutex
	var saved []models.ScheduleEntry
	q := NewAutosaveQueue(backend, e.ID, testDebounce, func(entry models.ScheduleEntry) {
		mu.Lock()
		saved = append(saved, entry)
		mu.Unlock()
	}, nil)
	defer q.Close()

	q.Queue(TimePatch{Start: "09:30", End: "10:30"})

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(saved) == 1
	})
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "09:30", saved[0].Start)
	assert.Equal(t, "10:30", saved[0].End)
}

func TestAutosaveErrorKeepsOptimisticValue(t *testing.T) {
	backend := newFakeBackend()
	e := backend.addEntry("09:00", "10:00", 1)
	backend.failEntryUpdate = true

	savedCalls := 0
	q := NewAutosaveQueue(backend, e.ID, testDebounce, func(models.ScheduleEntry) {
		savedCalls++
	}, nil)
	defer q.Close()

	q.Queue(TimePatch{Start: "09:30", End: "10:30"})

	waitFor(t, func() bool { return q.State() == SaveError })
	// No rollback callback fired; the user keeps the edit and may retry.
	assert.Equal(t, 0, savedCalls)

	// The next edit re-arms the state machine.
	backend.mu.Lock()
	backend.failEntryUpdate = false
	backend.mu.Unlock()
	q.Queue(TimePatch{Start: "09:45", End: "10:30"})
	waitFor(t, func() bool { return q.State() == SaveSaved })
}

func TestAutosaveCloseSuppressesLateResults(t *testing.T) {
	backend := newFakeBackend()
	e := backend.addEntry("09:00", "10:00", 1)
	backend.updateDelay = 4 * testDebounce

	var mu sync.Mutex
	calls := 0
	q := NewAutosaveQueue(backend, e.ID, testDebounce, func(models.ScheduleEntry) {
		mu.Lock()
		calls++
		mu.Unlock()
	}, nil)

	q.Queue(TimePatch{Start: "09:30", End: "10:30"})
	time.Sleep(2 * testDebounce) // request is now in flight
	q.Close()

	time.Sleep(6 * testDebounce)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 0, calls)
}

func TestAutosaveClosedQueueDropsEdits(t *testing.T) {
	backend := newFakeBackend()
	e := backend.addEntry("09:00", "10:00", 1)

	q := NewAutosaveQueue(backend, e.ID, testDebounce, nil, nil)
	q.Close()
	q.Queue(TimePatch{Start: "09:30", End: "10:30"})

	time.Sleep(3 * testDebounce)
	assert.Empty(t, backend.recordedUpdates())
}

func TestAutosaveStatesArriveInOrder(t *testing.T) {
	backend := newFakeBackend()
	e := backend.addEntry("09:00", "10:00", 1)

	var mu sync.Mutex
	var seen []SaveState
	q := NewAutosaveQueue(backend, e.ID, testDebounce, nil, func(id string, state SaveState) {
		mu.Lock()
		seen = append(seen, state)
		mu.Unlock()
	})
	defer q.Close()
	seenCount := func() int {
		mu.Lock()
		defer mu.Unlock()
		return len(seen)
	}

	q.Queue(TimePatch{Start: "09:15", End: "10:00"})
	waitFor(t, func() bool { return seenCount() == 2 })

	// A follow-up edit re-arms to idle before the next save cycle. The bar
	// must never see saving land after its saved.
	q.Queue(TimePatch{Start: "09:30", End: "10:00"})
	waitFor(t, func() bool { return seenCount() == 5 })
	time.Sleep(3 * testDebounce)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []SaveState{SaveSaving, SaveSaved, SaveIdle, SaveSaving, SaveSaved}, seen)
}

func TestSaveBarAggregates(t *testing.T) {
	bar := NewSaveBar()
	assert.Equal(t, SaveIdle, bar.Aggregate())

	bar.Observe("a", SaveSaved)
	assert.Equal(t, SaveSaved, bar.Aggregate())

	bar.Observe("b", SaveSaving)
	assert.Equal(t, SaveSaving, bar.Aggregate())

	bar.Observe("c", SaveError)
	assert.Equal(t, SaveError, bar.Aggregate())

	bar.Reset()
	assert.Equal(t, SaveIdle, bar.Aggregate())
}
