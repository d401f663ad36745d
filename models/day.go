package models

// Group is the owning aggregate for camp days. Only the fields the
// scheduling subsystem needs are carried here; member management lives
// elsewhere.
type Group struct {
	ID        string `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	StartDate string `bson:"startDate" json:"startDate"` // "2006-01-02"
	EndDate   string `bson:"endDate" json:"endDate"`     // "2006-01-02"
}

// CampDay represents one day of a group's camp. Version is an opaque token
// regenerated on every write; updates carry the token they were read with
// and are rejected on mismatch.
type CampDay struct {
	ID        string `bson:"id" json:"id"`
	GroupID   string `bson:"groupId" json:"groupId"`
	DayNumber int    `bson:"dayNumber" json:"dayNumber"` // 1..N, unique per group
	Date      string `bson:"date" json:"date"`           // "2006-01-02", within the group's range
	Theme     string `bson:"theme,omitempty" json:"theme,omitempty"`
	Version   string `bson:"version" json:"version"`
}

// DayPatch carries the mutable day fields for an update. Nil means
// "leave unchanged".
type DayPatch struct {
	Date  *string `json:"date,omitempty"`
	Theme *string `json:"theme,omitempty"`
}

// CreateDayRequest defines the payload for creating a day.
type CreateDayRequest struct {
	Date  string `json:"date" binding:"required"`
	Theme string `json:"theme"`
}
