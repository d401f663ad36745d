// File: utils/timeutil.go
package utils

import "fmt"

// Minute-of-day bounds for schedule times. A slot never crosses midnight,
// so arithmetic clamps to this range instead of wrapping.
const (
	MinMinuteOfDay = 0
	MaxMinuteOfDay = 23*60 + 59
)

// IsValidTimeString reports whether s is a strict zero-padded "HH:MM" value
// with HH in [00,23] and MM in [00,59]. No seconds, no other separators.
func IsValidTimeString(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	for i, c := range s {
		if i == 2 {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	hh := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	return hh <= 23 && mm <= 59
}

// ParseMinuteOfDay converts a valid "HH:MM" string to minutes from midnight.
func ParseMinuteOfDay(s string) (int, error) {
	if !IsValidTimeString(s) {
		return 0, fmt.Errorf("invalid time string %q, want zero-padded HH:MM", s)
	}
	hh := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	return hh*60 + mm, nil
}

// FormatMinuteOfDay converts minutes from midnight back to "HH:MM",
// clamping out-of-range input.
func FormatMinuteOfDay(m int) string {
	m = clampMinute(m)
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// MinutesBetween returns end minus start in minutes. The result may be
// negative; the caller decides whether that is an error. There is no
// wraparound across midnight.
func MinutesBetween(start, end string) (int, error) {
	s, err := ParseMinuteOfDay(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseMinuteOfDay(end)
	if err != nil {
		return 0, err
	}
	return e - s, nil
}

// AddMinutes adds delta minutes (delta may be negative) to t and clamps the
// result to [00:00, 23:59]. Overflow never wraps to the adjacent day and
// never fails.
func AddMinutes(t string, delta int) (string, error) {
	m, err := ParseMinuteOfDay(t)
	if err != nil {
		return "", err
	}
	return FormatMinuteOfDay(m + delta), nil
}

func clampMinute(m int) int {
	if m < MinMinuteOfDay {
		return MinMinuteOfDay
	}
	if m > MaxMinuteOfDay {
		return MaxMinuteOfDay
	}
	return m
}
