// File: planner/conflicts.go
package planner

import (
	"fmt"
	"sort"

	"campwise/utils"
)

// Conflict types.
const (
	ConflictOverlap = "overlap"
	ConflictOrder   = "order"
	ConflictAPI     = "api"
)

// ConflictMessage is a transient, derived diagnostic. It is recomputed on
// every slot-list change and never persisted; conflicts are advisory and do
// not block submission.
type ConflictMessage struct {
	Type   string `json:"type"` // overlap, order or api
	Detail string `json:"detail"`
	SlotID string `json:"slotId,omitempty"`
}

// DetectConflicts inspects one day's slot collection and reports duplicate
// order values and overlapping time ranges. The input may arrive in any
// order and is not modified.
//
// Overlaps are found with a sweep over a start-sorted copy: track the
// maximum end seen so far and flag any slot starting before it. Unlike an
// adjacent-pair comparison this also catches a slot nested inside an
// earlier, longer one.
func DetectConflicts(slots []Slot) []ConflictMessage {
	var conflicts []ConflictMessage

	// One order conflict per duplicated value, not per slot.
	counts := make(map[int]int)
	for _, s := range slots {
		counts[s.OrderInDay]++
	}
	dupes := make([]int, 0, len(counts))
	for order, n := range counts {
		if n > 1 {
			dupes = append(dupes, order)
		}
	}
	sort.Ints(dupes)
	for _, order := range dupes {
		conflicts = append(conflicts, ConflictMessage{
			Type:   ConflictOrder,
			Detail: fmt.Sprintf("slot order %d is used more than once", order),
		})
	}

	// Sweep over a sorted copy; stable keeps input order on equal starts.
	sorted := make([]Slot, len(slots))
	copy(sorted, slots)
	sort.SliceStable(sorted, func(i, j int) bool {
		return startMinute(sorted[i]) < startMinute(sorted[j])
	})

	maxEnd := -1
	var maxEndSlot Slot
	for _, s := range sorted {
		start := startMinute(s)
		if maxEnd >= 0 && start < maxEnd {
			conflicts = append(conflicts, ConflictMessage{
				Type: ConflictOverlap,
				Detail: fmt.Sprintf("slot %d (%s-%s) overlaps slot %d (%s-%s)",
					maxEndSlot.OrderInDay, maxEndSlot.Start, maxEndSlot.End,
					s.OrderInDay, s.Start, s.End),
				SlotID: s.ID,
			})
		}
		if end := endMinute(s); end > maxEnd {
			maxEnd = end
			maxEndSlot = s
		}
	}

	return conflicts
}

func startMinute(s Slot) int {
	m, err := utils.ParseMinuteOfDay(s.Start)
	if err != nil {
		return 0
	}
	return m
}

func endMinute(s Slot) int {
	m, err := utils.ParseMinuteOfDay(s.End)
	if err != nil {
		return 0
	}
	return m
}
