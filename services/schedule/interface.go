// File: services/schedule/interface.go
package schedule

import (
	"context"

	activityRepo "campwise/database/repository/activity"
	dayRepo "campwise/database/repository/day"
	entryRepo "campwise/database/repository/entry"
	groupRepo "campwise/database/repository/group"
	"campwise/models"
	"campwise/services/notify"
)

// ScheduleService manages camp days and their schedule entries. Day updates
// are version-checked; entry updates are plain last-write-wins patches.
type ScheduleService interface {
	ListDays(ctx context.Context, groupID string) ([]models.CampDay, error)
	CreateDay(ctx context.Context, groupID string, req models.CreateDayRequest) (*models.CampDay, error)
	GetDay(ctx context.Context, dayID string) (*models.CampDay, error)
	UpdateDay(ctx context.Context, dayID string, patch models.DayPatch, version string) (*models.CampDay, error)
	DeleteDay(ctx context.Context, dayID string) error

	ListEntries(ctx context.Context, dayID string) ([]models.ScheduleEntry, error)
	CreateEntry(ctx context.Context, dayID string, req models.CreateEntryRequest) (*models.ScheduleEntry, error)
	UpdateEntry(ctx context.Context, entryID string, patch models.EntryPatch) (*models.ScheduleEntry, error)
	DeleteEntry(ctx context.Context, entryID string) error
}

// DefaultScheduleService is the production implementation backed by the
// Mongo repositories and the asynq change publisher.
type DefaultScheduleService struct {
	Days       dayRepo.DayRepository
	Entries    entryRepo.EntryRepository
	Groups     groupRepo.GroupRepository
	Activities activityRepo.ActivityRepository
	Notifier   notify.Publisher
}
