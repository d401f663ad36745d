package models

// Capability is the permission context supplied by the auth collaborator.
// This subsystem consumes it as given; role computation happens elsewhere.
type Capability struct {
	CanEdit      bool `json:"canEdit"`
	CanDeleteDay bool `json:"canDeleteDay"`
}
