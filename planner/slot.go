// File: planner/slot.go
package planner

import (
	"campwise/models"
	"campwise/utils"
)

// Slot is the in-memory view of one schedule entry, enriched with the
// caller's edit capability.
type Slot struct {
	ID         string
	DayID      string
	ActivityID string
	Start      string // "HH:MM"
	End        string // "HH:MM"
	OrderInDay int
	CanEdit    bool
}

// SlotFromEntry maps a raw persisted schedule entry into the view model,
// attaching the caller's permission context.
func SlotFromEntry(entry models.ScheduleEntry, capability models.Capability) Slot {
	return Slot{
		ID:         entry.ID,
		DayID:      entry.DayID,
		ActivityID: entry.ActivityID,
		Start:      entry.Start,
		End:        entry.End,
		OrderInDay: entry.OrderInDay,
		CanEdit:    capability.CanEdit,
	}
}

// Duration returns the slot's length in minutes, clamped to zero for
// invalid or negative ranges so aggregates never go negative.
func (s Slot) Duration() int {
	d, err := utils.MinutesBetween(s.Start, s.End)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// DuplicateAfter derives the create request for a copy of s: the new slot
// starts where s ends and keeps the same duration, clamped at end of day.
func (s Slot) DuplicateAfter(order int) models.CreateEntryRequest {
	end, err := utils.AddMinutes(s.End, s.Duration())
	if err != nil {
		end = s.End
	}
	return models.CreateEntryRequest{
		ActivityID: s.ActivityID,
		Start:      s.End,
		End:        end,
		OrderInDay: order,
	}
}
