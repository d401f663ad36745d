// File: planner/template.go
package planner

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"campwise/models"
	"campwise/utils"
)

// DefaultDayStart is where the first slot of an empty day begins.
const DefaultDayStart = "09:00"

// TemplateBlock is one named time block of a day template.
type TemplateBlock struct {
	Label   string
	Minutes int
}

// Block application stages, for failure attribution.
const (
	StageActivity = "activity"
	StageEntry    = "entry"
	StageDone     = "done"
)

// BlockResult records the outcome of one template block.
type BlockResult struct {
	Label string
	Start string
	End   string
	Stage string // the stage reached: done, or where it failed
	Err   error
}

// ApplyReport summarizes a template run.
type ApplyReport struct {
	Results []BlockResult
}

// Succeeded counts fully created blocks.
func (r ApplyReport) Succeeded() int {
	n := 0
	for _, b := range r.Results {
		if b.Err == nil {
			n++
		}
	}
	return n
}

// Failed counts blocks that stopped at activity or entry creation.
func (r ApplyReport) Failed() int {
	return len(r.Results) - r.Succeeded()
}

// DefaultTemplate returns the standard camp day.
func DefaultTemplate() []TemplateBlock {
	return []TemplateBlock{
		{Label: "Breakfast", Minutes: 60},
		{Label: "Morning program", Minutes: 120},
		{Label: "Lunch", Minutes: 60},
		{Label: "Afternoon program", Minutes: 150},
		{Label: "Free time", Minutes: 60},
		{Label: "Dinner", Minutes: 60},
		{Label: "Campfire", Minutes: 90},
	}
}

// TemplateApplier creates the activity-and-entry pair for each block of a
// day template. Strictly sequential: order-in-day assignment must stay
// monotonic and each block is a two-step dependency chain, so interleaving
// would risk order collisions and muddy per-block error attribution.
type TemplateApplier struct {
	backend Backend
	loader  *DayLoader
	groupID string
	logger  *zap.Logger
}

// NewTemplateApplier builds an applier bound to one day view.
func NewTemplateApplier(backend Backend, loader *DayLoader, groupID string) *TemplateApplier {
	return &TemplateApplier{
		backend: backend,
		loader:  loader,
		groupID: groupID,
		logger:  utils.GetLogger(),
	}
}

// Apply runs the template against the loader's day, starting at startAt (or
// the day's next free start when empty). A failing block is recorded and the
// run continues; prior successes are never rolled back. The day is fully
// reloaded afterwards instead of merging partial optimistic results.
func (a *TemplateApplier) Apply(ctx context.Context, blocks []TemplateBlock, startAt string) (ApplyReport, error) {
	if startAt == "" {
		startAt = a.loader.NextStart()
	}

	// Compute every block's [start, end) up front by walking a cursor.
	results := make([]BlockResult, len(blocks))
	cursor := startAt
	for i, block := range blocks {
		end, err := utils.AddMinutes(cursor, block.Minutes)
		if err != nil {
			return ApplyReport{}, fmt.Errorf("invalid template start %q: %w", startAt, err)
		}
		results[i] = BlockResult{Label: block.Label, Start: cursor, End: end}
		cursor = end
	}

	baseOrder := len(a.loader.Slots())
	for i := range results {
		r := &results[i]

		act, err := a.backend.CreateActivity(ctx, a.groupID, models.CreateActivityRequest{
			Title:  r.Label,
			Status: models.ActivityStatusPlanned,
		})
		if err != nil {
			r.Stage = StageActivity
			r.Err = err
			a.logger.Warn("template block failed at activity creation",
				zap.String("label", r.Label), zap.Error(err))
			continue
		}

		_, err = a.backend.CreateEntry(ctx, a.loader.DayID(), models.CreateEntryRequest{
			ActivityID: act.ID,
			Start:      r.Start,
			End:        r.End,
			OrderInDay: baseOrder + i + 1,
		})
		if err != nil {
			r.Stage = StageEntry
			r.Err = err
			a.logger.Warn("template block failed at entry creation",
				zap.String("label", r.Label), zap.Error(err))
			continue
		}
		r.Stage = StageDone
	}

	// Reconcile via a full reload rather than merging per-block results.
	if err := a.loader.Refresh(ctx); err != nil {
		return ApplyReport{Results: results}, fmt.Errorf("template applied but reload failed: %w", err)
	}
	return ApplyReport{Results: results}, nil
}
