// File: services/schedule/errors.go
package schedule

import "errors"

var (
	// ErrVersionConflict signals that a day update carried a stale version
	// token. The caller should refetch the canonical day and discard its draft.
	ErrVersionConflict = errors.New("day was modified by a concurrent edit")

	// ErrInvalidTimeRange signals a malformed time value or start >= end.
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrDateOutOfRange signals a day date outside the group's camp dates.
	ErrDateOutOfRange = errors.New("date falls outside the group's camp range")
)
