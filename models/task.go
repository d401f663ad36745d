package models

// Task is a group-level todo item. It follows the same version-token
// discipline as CampDay: reads return the token, writes must present it.
type Task struct {
	ID      string `bson:"id" json:"id"`
	GroupID string `bson:"groupId" json:"groupId"`
	Title   string `bson:"title" json:"title"`
	Done    bool   `bson:"done" json:"done"`
	Version string `bson:"version" json:"version"`
}

// TaskPatch carries the mutable task fields for an update.
type TaskPatch struct {
	Title *string `json:"title,omitempty"`
	Done  *bool   `json:"done,omitempty"`
}
