package models

// Activity statuses.
const (
	ActivityStatusIdea    = "idea"
	ActivityStatusPlanned = "planned"
	ActivityStatusDone    = "done"
)

// Activity is the underlying resource a schedule entry references.
type Activity struct {
	ID          string `bson:"id" json:"id"`
	GroupID     string `bson:"groupId" json:"groupId"`
	Title       string `bson:"title" json:"title"`
	Status      string `bson:"status" json:"status"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// ActivitySummary is the read-only projection cached by the planner when a
// slot references an activity not yet resident in memory.
type ActivitySummary struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// Summary projects an activity down to its cached form.
func (a Activity) Summary() ActivitySummary {
	return ActivitySummary{ID: a.ID, Title: a.Title, Status: a.Status}
}

// CreateActivityRequest defines the payload for creating an activity.
type CreateActivityRequest struct {
	Title       string `json:"title" binding:"required"`
	Status      string `json:"status"`
	Description string `json:"description"`
}
