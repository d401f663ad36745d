package models

// ScheduleEntry is a persisted slot: a time-boxed assignment of one activity
// to one camp day. Start and end are wall-clock "HH:MM" values within a
// single day; entries never cross midnight. OrderInDay is a human-facing
// sequencing hint: uniqueness per day is a soft invariant the server
// repairs on renumbering but does not reject on.
//
// Entry updates carry no version token: time-range edits arrive as debounced
// high-frequency patches, and the last write wins.
type ScheduleEntry struct {
	ID         string `bson:"id" json:"id"`
	DayID      string `bson:"dayId" json:"dayId"`
	ActivityID string `bson:"activityId" json:"activityId"`
	Start      string `bson:"start" json:"start"` // "HH:MM"
	End        string `bson:"end" json:"end"`     // "HH:MM", start < end
	OrderInDay int    `bson:"orderInDay" json:"orderInDay"`
}

// EntryPatch carries the mutable entry fields for a plain PATCH.
// Nil means "leave unchanged".
type EntryPatch struct {
	Start      *string `json:"start,omitempty"`
	End        *string `json:"end,omitempty"`
	OrderInDay *int    `json:"orderInDay,omitempty"`
}

// CreateEntryRequest defines the payload for adding a slot to a day.
type CreateEntryRequest struct {
	ActivityID string `json:"activityId" binding:"required"`
	Start      string `json:"start" binding:"required"`
	End        string `json:"end" binding:"required"`
	OrderInDay int    `json:"orderInDay"`
}
