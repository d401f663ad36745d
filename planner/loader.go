// File: planner/loader.go
package planner

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"campwise/models"
)

// DayLoader owns the canonical in-memory slot list for one day view. Every
// other planner component mutates the list through the loader's setters
// rather than holding its own writable copy, so one page instance never
// sees divergent slot lists. Derived values (total minutes, conflicts) are
// recomputed on every change.
type DayLoader struct {
	backend    Backend
	dayID      string
	capability models.Capability

	mu           sync.Mutex
	day          *models.CampDay
	slots        []Slot
	conflicts    []ConflictMessage
	totalMinutes int
	loading      bool
	lastError    string
	activities   map[string]models.ActivitySummary
}

// NewDayLoader builds a loader for one day. A day record already known to
// the caller may be passed to skip the redundant metadata fetch on the
// first Load.
func NewDayLoader(backend Backend, dayID string, capability models.Capability, known *models.CampDay) *DayLoader {
	return &DayLoader{
		backend:    backend,
		dayID:      dayID,
		capability: capability,
		day:        known,
		activities: make(map[string]models.ActivitySummary),
	}
}

// DayID returns the identifier of the loaded day.
func (l *DayLoader) DayID() string { return l.dayID }

// Load fetches the day metadata (unless already known) and the full slot
// collection. On failure any previously loaded data stays visible; only the
// error message is updated.
func (l *DayLoader) Load(ctx context.Context) error {
	l.mu.Lock()
	l.loading = true
	haveDay := l.day != nil
	l.mu.Unlock()

	var day *models.CampDay
	if !haveDay {
		var err error
		day, err = l.backend.GetDay(ctx, l.dayID)
		if err != nil {
			return l.fail(fmt.Errorf("failed to load day: %w", err))
		}
	}

	entries, err := l.backend.ListEntries(ctx, l.dayID)
	if err != nil {
		return l.fail(fmt.Errorf("failed to load schedule: %w", err))
	}

	slots := make([]Slot, len(entries))
	for i, e := range entries {
		slots[i] = SlotFromEntry(e, l.capability)
	}
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].OrderInDay < slots[j].OrderInDay
	})

	l.mu.Lock()
	defer l.mu.Unlock()
	if day != nil {
		l.day = day
	}
	l.slots = slots
	l.loading = false
	l.lastError = ""
	l.recompute()
	return nil
}

// Refresh re-runs the full load, refetching the day metadata as well: the
// coarse invalidation signal carries no hint of what changed.
func (l *DayLoader) Refresh(ctx context.Context) error {
	l.mu.Lock()
	l.day = nil
	l.mu.Unlock()
	return l.Load(ctx)
}

func (l *DayLoader) fail(err error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loading = false
	l.lastError = err.Error()
	return err
}

// Day returns the loaded day record, or nil while it is not yet available.
func (l *DayLoader) Day() *models.CampDay {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.day == nil {
		return nil
	}
	d := *l.day
	return &d
}

// SetDay replaces the day record, e.g. after a versioned update returned
// the canonical copy.
func (l *DayLoader) SetDay(day *models.CampDay) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.day = day
}

// Slots returns a snapshot of the slot list.
func (l *DayLoader) Slots() []Slot {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Slot, len(l.slots))
	copy(out, l.slots)
	return out
}

// TotalMinutes returns the summed non-negative slot durations.
func (l *DayLoader) TotalMinutes() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totalMinutes
}

// Conflicts returns the diagnostics derived from the current slot list.
func (l *DayLoader) Conflicts() []ConflictMessage {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]ConflictMessage, len(l.conflicts))
	copy(out, l.conflicts)
	return out
}

// Loading reports whether a load is in progress.
func (l *DayLoader) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Err returns the message of the last failed load, empty after a success.
func (l *DayLoader) Err() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastError
}

// InsertSlot adds a slot optimistically, keeping order-in-day sorting.
func (l *DayLoader) InsertSlot(slot Slot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.slots = append(l.slots, slot)
	sort.SliceStable(l.slots, func(i, j int) bool {
		return l.slots[i].OrderInDay < l.slots[j].OrderInDay
	})
	l.recompute()
}

// ReplaceSlot swaps the slot with the same id, e.g. with the canonical copy
// reported back by an autosave. Unknown ids are ignored.
func (l *DayLoader) ReplaceSlot(slot Slot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.slots {
		if l.slots[i].ID == slot.ID {
			l.slots[i] = slot
			break
		}
	}
	l.recompute()
}

// RemoveSlot drops the slot with the given id.
func (l *DayLoader) RemoveSlot(slotID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.slots[:0]
	for _, s := range l.slots {
		if s.ID != slotID {
			kept = append(kept, s)
		}
	}
	l.slots = kept
	l.recompute()
}

// SetSlots replaces the whole list, used for reorders.
func (l *DayLoader) SetSlots(slots []Slot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.slots = make([]Slot, len(slots))
	copy(l.slots, slots)
	l.recompute()
}

// DuplicateSlot creates a copy of the given slot starting where it ends,
// persists it, and inserts the created entry into the list.
func (l *DayLoader) DuplicateSlot(ctx context.Context, slotID string) (*Slot, error) {
	var src *Slot
	var nextOrder int
	l.mu.Lock()
	for i := range l.slots {
		if l.slots[i].OrderInDay > nextOrder {
			nextOrder = l.slots[i].OrderInDay
		}
		if l.slots[i].ID == slotID {
			s := l.slots[i]
			src = &s
		}
	}
	l.mu.Unlock()
	if src == nil {
		return nil, fmt.Errorf("slot %s not found", slotID)
	}

	created, err := l.backend.CreateEntry(ctx, l.dayID, src.DuplicateAfter(nextOrder+1))
	if err != nil {
		return nil, fmt.Errorf("failed to duplicate slot: %w", err)
	}
	slot := SlotFromEntry(*created, l.capability)
	l.InsertSlot(slot)
	return &slot, nil
}

// ActivitySummary resolves an activity referenced by a slot, caching lazily
// by identifier.
func (l *DayLoader) ActivitySummary(ctx context.Context, activityID string) (*models.ActivitySummary, error) {
	l.mu.Lock()
	if cached, ok := l.activities[activityID]; ok {
		l.mu.Unlock()
		return &cached, nil
	}
	l.mu.Unlock()

	summary, err := l.backend.GetActivitySummary(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activity: %w", err)
	}

	l.mu.Lock()
	l.activities[activityID] = *summary
	l.mu.Unlock()
	return summary, nil
}

// NextStart returns where a new slot should begin: the end of the latest
// slot, or the default camp morning for an empty day.
func (l *DayLoader) NextStart() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.slots) == 0 {
		return DefaultDayStart
	}
	latest := l.slots[0].End
	for _, s := range l.slots[1:] {
		if s.End > latest {
			latest = s.End
		}
	}
	return latest
}

// recompute refreshes the derived values. Callers hold l.mu.
func (l *DayLoader) recompute() {
	total := 0
	for _, s := range l.slots {
		total += s.Duration()
	}
	l.totalMinutes = total
	l.conflicts = DetectConflicts(l.slots)
}
