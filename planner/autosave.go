// File: planner/autosave.go
package planner

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"campwise/models"
	"campwise/utils"
)

// SaveState tracks the lifecycle of a slot's pending write.
type SaveState int

const (
	SaveIdle SaveState = iota
	SaveSaving
	SaveSaved
	SaveError
)

func (s SaveState) String() string {
	switch s {
	case SaveSaving:
		return "saving"
	case SaveSaved:
		return "saved"
	case SaveError:
		return "error"
	default:
		return "idle"
	}
}

// DefaultDebounce is the quiescence window for slot time-range edits.
const DefaultDebounce = 600 * time.Millisecond

// TimePatch is the payload of one debounced slot write.
type TimePatch struct {
	Start string
	End   string
}

// AutosaveQueue converts rapid local edits to one slot's time range into a
// single eventually-consistent write. One instance per visible slot.
//
// Edits replace the pending payload (last write wins) and restart the
// debounce timer. At most one request is in flight at a time; an edit
// arriving mid-flight waits for the call to settle and then sends the
// latest desired state, so stale intermediate states are never sent. A
// failed write keeps the caller's optimistic value: rolling back on every
// transient error would be disruptive for a control that fires on keystrokes.
type AutosaveQueue struct {
	backend  Backend
	entryID  string
	debounce time.Duration
	logger   *zap.Logger

	// onSaved receives the server's canonical entry after each successful
	// write; the server is authoritative for order renumbering side effects.
	onSaved func(models.ScheduleEntry)
	// onState observes every state transition, feeding the day-level bar.
	onState func(string, SaveState)

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	timer    *time.Timer
	pending  *TimePatch
	inflight bool
	closed   bool
	state    SaveState
}

// NewAutosaveQueue builds a queue for one slot. onSaved and onState may be
// nil. A non-positive debounce falls back to DefaultDebounce.
func NewAutosaveQueue(backend Backend, entryID string, debounce time.Duration, onSaved func(models.ScheduleEntry), onState func(string, SaveState)) *AutosaveQueue {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &AutosaveQueue{
		backend:  backend,
		entryID:  entryID,
		debounce: debounce,
		logger:   utils.GetLogger(),
		onSaved:  onSaved,
		onState:  onState,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Queue records the latest desired time range. The caller has already
// applied the change optimistically; the write goes out once edits quiesce.
func (q *AutosaveQueue) Queue(patch TimePatch) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.pending = &patch
	// A fresh edit re-arms the state machine out of saved/error.
	rearmed := false
	if !q.inflight && (q.state == SaveSaved || q.state == SaveError) {
		q.state = SaveIdle
		rearmed = true
	}
	if q.timer != nil {
		q.timer.Stop()
	}
	q.timer = time.AfterFunc(q.debounce, q.flush)
	q.mu.Unlock()

	if rearmed {
		q.emitState(SaveIdle)
	}
}

// State returns the slot's current save state.
func (q *AutosaveQueue) State() SaveState {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

// Flush sends any pending payload immediately, without waiting for the
// debounce window. Used on blur/navigation commit points.
func (q *AutosaveQueue) Flush() {
	q.mu.Lock()
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
	q.mu.Unlock()
	q.flush()
}

// Close cancels the pending timer and suppresses results of any in-flight
// request. Must be called on view teardown so a late response never mutates
// a disposed view.
func (q *AutosaveQueue) Close() {
	q.mu.Lock()
	q.closed = true
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
	q.pending = nil
	q.mu.Unlock()
	q.cancel()
}

// flush fires when the debounce window elapses. If a request is already in
// flight the payload stays queued; the settle path picks it up.
func (q *AutosaveQueue) flush() {
	q.mu.Lock()
	if q.closed || q.inflight || q.pending == nil {
		q.mu.Unlock()
		return
	}
	patch := *q.pending
	q.pending = nil
	q.inflight = true
	q.state = SaveSaving
	q.mu.Unlock()

	q.emitState(SaveSaving)
	go q.send(patch)
}

func (q *AutosaveQueue) send(patch TimePatch) {
	entry, err := q.backend.UpdateEntry(q.ctx, q.entryID, models.EntryPatch{
		Start: &patch.Start,
		End:   &patch.End,
	})

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	var emits []SaveState
	if err != nil {
		q.state = SaveError
		emits = append(emits, SaveError)
		q.logger.Warn("slot autosave failed",
			zap.String("entryID", q.entryID), zap.Error(err))
	} else {
		q.state = SaveSaved
		emits = append(emits, SaveSaved)
	}

	// An edit that arrived mid-flight is sent now, carrying the latest
	// desired state rather than the one that was queued when we started.
	var next *TimePatch
	if q.pending != nil {
		p := *q.pending
		q.pending = nil
		next = &p
		q.inflight = true
		q.state = SaveSaving
		emits = append(emits, SaveSaving)
	} else {
		q.inflight = false
	}
	q.mu.Unlock()

	for _, s := range emits {
		q.emitState(s)
	}
	if err == nil && entry != nil && q.onSaved != nil {
		q.onSaved(*entry)
	}
	if next != nil {
		q.send(*next)
	}
}

// emitState delivers one transition to the observer. Called without q.mu so
// the observer may call back into the queue; delivery is synchronous so a
// slot's transitions arrive in the order they were made.
func (q *AutosaveQueue) emitState(state SaveState) {
	if q.onState != nil {
		q.onState(q.entryID, state)
	}
}

// SaveBar aggregates per-slot save states into one day-level indicator.
type SaveBar struct {
	mu     sync.Mutex
	states map[string]SaveState
}

// NewSaveBar builds an empty aggregate.
func NewSaveBar() *SaveBar {
	return &SaveBar{states: make(map[string]SaveState)}
}

// Observe records a slot's latest state; pass it as the onState hook of
// each queue.
func (b *SaveBar) Observe(entryID string, state SaveState) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.states[entryID] = state
}

// Aggregate reports the worst current state across all slots: an error
// anywhere wins, then an in-flight save, then saved, else idle.
func (b *SaveBar) Aggregate() SaveState {
	b.mu.Lock()
	defer b.mu.Unlock()
	agg := SaveIdle
	anySaved := false
	for _, s := range b.states {
		switch s {
		case SaveError:
			return SaveError
		case SaveSaving:
			agg = SaveSaving
		case SaveSaved:
			anySaved = true
		}
	}
	if agg == SaveIdle && anySaved {
		return SaveSaved
	}
	return agg
}

// Reset clears all tracked states, e.g. on navigation.
func (b *SaveBar) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.states = make(map[string]SaveState)
}
