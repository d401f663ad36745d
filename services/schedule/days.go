// File: services/schedule/days.go
package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	dayRepo "campwise/database/repository/day"
	"campwise/models"
	"campwise/utils"
)

const dateLayout = "2006-01-02"

func (s *DefaultScheduleService) ListDays(ctx context.Context, groupID string) ([]models.CampDay, error) {
	days, err := s.Days.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list days: %w", err)
	}
	return days, nil
}

// CreateDay appends a new day to the group's camp. The day number is the
// next free sequence position; the date must fall within the group's range.
func (s *DefaultScheduleService) CreateDay(ctx context.Context, groupID string, req models.CreateDayRequest) (*models.CampDay, error) {
	group, err := s.Groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("group not found: %w", err)
	}
	if err := s.checkDateInRange(group, req.Date); err != nil {
		return nil, err
	}

	count, err := s.Days.CountByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to count days: %w", err)
	}

	day := models.CampDay{
		GroupID:   groupID,
		DayNumber: count + 1,
		Date:      req.Date,
		Theme:     req.Theme,
	}
	created, err := s.Days.Create(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to create day: %w", err)
	}
	return created, nil
}

func (s *DefaultScheduleService) GetDay(ctx context.Context, dayID string) (*models.CampDay, error) {
	day, err := s.Days.GetByID(ctx, dayID)
	if err != nil {
		return nil, fmt.Errorf("day not found: %w", err)
	}
	return day, nil
}

// UpdateDay applies a date/theme patch if the presented version token is
// still current. On a stale token it returns ErrVersionConflict without
// touching the stored day; the handler responds with the canonical copy.
func (s *DefaultScheduleService) UpdateDay(ctx context.Context, dayID string, patch models.DayPatch, version string) (*models.CampDay, error) {
	day, err := s.Days.GetByID(ctx, dayID)
	if err != nil {
		return nil, fmt.Errorf("day not found: %w", err)
	}
	if patch.Date != nil {
		group, err := s.Groups.GetByID(ctx, day.GroupID)
		if err != nil {
			return nil, fmt.Errorf("group not found: %w", err)
		}
		if err := s.checkDateInRange(group, *patch.Date); err != nil {
			return nil, err
		}
	}

	updated, err := s.Days.UpdateWithVersion(ctx, dayID, patch, version, uuid.New().String())
	if err != nil {
		if errors.Is(err, dayRepo.ErrVersionMismatch) {
			return nil, ErrVersionConflict
		}
		return nil, fmt.Errorf("failed to update day: %w", err)
	}

	s.publishDayChanged(ctx, dayID)
	return updated, nil
}

func (s *DefaultScheduleService) DeleteDay(ctx context.Context, dayID string) error {
	if err := s.Days.DeleteByID(ctx, dayID); err != nil {
		return fmt.Errorf("failed to delete day: %w", err)
	}
	s.publishDayChanged(ctx, dayID)
	return nil
}

func (s *DefaultScheduleService) checkDateInRange(group *models.Group, date string) error {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	start, err := time.Parse(dateLayout, group.StartDate)
	if err != nil {
		return fmt.Errorf("group has invalid start date: %w", err)
	}
	end, err := time.Parse(dateLayout, group.EndDate)
	if err != nil {
		return fmt.Errorf("group has invalid end date: %w", err)
	}
	if d.Before(start) || d.After(end) {
		return ErrDateOutOfRange
	}
	return nil
}

// publishDayChanged is best-effort: a lost notification is repaired by the
// subscriber's next full reload.
func (s *DefaultScheduleService) publishDayChanged(ctx context.Context, dayID string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.DayChanged(ctx, dayID); err != nil {
		utils.GetLogger().Warn("failed to publish day change",
			zap.String("dayID", dayID), zap.Error(err))
	}
}
