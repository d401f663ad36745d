// File: services/schedule/entries.go
package schedule

import (
	"context"
	"fmt"
	"sort"

	"campwise/models"
	"campwise/utils"
)

func (s *DefaultScheduleService) ListEntries(ctx context.Context, dayID string) ([]models.ScheduleEntry, error) {
	entries, err := s.Entries.ListByDay(ctx, dayID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule entries: %w", err)
	}
	return entries, nil
}

func (s *DefaultScheduleService) CreateEntry(ctx context.Context, dayID string, req models.CreateEntryRequest) (*models.ScheduleEntry, error) {
	if err := validateTimeRange(req.Start, req.End); err != nil {
		return nil, err
	}
	if _, err := s.Days.GetByID(ctx, dayID); err != nil {
		return nil, fmt.Errorf("day not found: %w", err)
	}
	if _, err := s.Activities.GetByID(ctx, req.ActivityID); err != nil {
		return nil, fmt.Errorf("activity not found: %w", err)
	}

	order := req.OrderInDay
	if order <= 0 {
		existing, err := s.Entries.ListByDay(ctx, dayID)
		if err != nil {
			return nil, fmt.Errorf("failed to list schedule entries: %w", err)
		}
		order = len(existing) + 1
	}

	entry := models.ScheduleEntry{
		DayID:      dayID,
		ActivityID: req.ActivityID,
		Start:      req.Start,
		End:        req.End,
		OrderInDay: order,
	}
	created, err := s.Entries.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to create schedule entry: %w", err)
	}

	s.publishDayChanged(ctx, dayID)
	return created, nil
}

// UpdateEntry applies a plain, unconditioned patch to one entry. The server
// is authoritative for order: if the patch produces duplicate orderInDay
// values for the day, the whole day is renumbered and the canonical entry is
// returned.
func (s *DefaultScheduleService) UpdateEntry(ctx context.Context, entryID string, patch models.EntryPatch) (*models.ScheduleEntry, error) {
	existing, err := s.Entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("schedule entry not found: %w", err)
	}

	start, end := existing.Start, existing.End
	if patch.Start != nil {
		start = *patch.Start
	}
	if patch.End != nil {
		end = *patch.End
	}
	if err := validateTimeRange(start, end); err != nil {
		return nil, err
	}

	updated, err := s.Entries.Update(ctx, entryID, patch)
	if err != nil {
		return nil, err
	}

	canonical, err := s.normalizeOrder(ctx, updated.DayID, updated.ID)
	if err != nil {
		return nil, err
	}
	if canonical == nil {
		canonical = updated
	}

	s.publishDayChanged(ctx, updated.DayID)
	return canonical, nil
}

func (s *DefaultScheduleService) DeleteEntry(ctx context.Context, entryID string) error {
	existing, err := s.Entries.GetByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("schedule entry not found: %w", err)
	}
	if err := s.Entries.DeleteByID(ctx, entryID); err != nil {
		return fmt.Errorf("failed to delete schedule entry: %w", err)
	}
	if _, err := s.normalizeOrder(ctx, existing.DayID, ""); err != nil {
		return err
	}

	s.publishDayChanged(ctx, existing.DayID)
	return nil
}

// normalizeOrder renumbers a day's entries to the sequence 1..N when the
// current order values collide or leave gaps. Entries are ranked by their
// existing order, ties broken by start time. Returns the refreshed entry for
// wantID, or nil when no renumbering was needed.
func (s *DefaultScheduleService) normalizeOrder(ctx context.Context, dayID, wantID string) (*models.ScheduleEntry, error) {
	entries, err := s.Entries.ListByDay(ctx, dayID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule entries: %w", err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].OrderInDay != entries[j].OrderInDay {
			return entries[i].OrderInDay < entries[j].OrderInDay
		}
		return entries[i].Start < entries[j].Start
	})

	orders := make(map[string]int)
	var want *models.ScheduleEntry
	for i := range entries {
		seq := i + 1
		if entries[i].OrderInDay != seq {
			orders[entries[i].ID] = seq
			entries[i].OrderInDay = seq
		}
		if entries[i].ID == wantID {
			want = &entries[i]
		}
	}
	if len(orders) == 0 {
		return nil, nil
	}
	if err := s.Entries.SetOrders(ctx, orders); err != nil {
		return nil, err
	}
	return want, nil
}

func validateTimeRange(start, end string) error {
	if !utils.IsValidTimeString(start) || !utils.IsValidTimeString(end) {
		return fmt.Errorf("%w: times must be zero-padded HH:MM", ErrInvalidTimeRange)
	}
	d, err := utils.MinutesBetween(start, end)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	if d <= 0 {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidTimeRange, start, end)
	}
	return nil
}
