package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The source system stored dates as Firestore timestamps, ISO strings or
// native dates interchangeably. Everything entering this system goes
// through ParseFlexibleDate once, at the boundary, and is only ever a
// *time.Time afterwards.

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02.01.2006",
}

// ParseFlexibleDate normalizes a raw date value. Accepted forms: RFC3339,
// "YYYY-MM-DD", "DD.MM.YYYY" and unix epoch milliseconds. Empty input
// yields (nil, nil).
func ParseFlexibleDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			d := Day(t)
			return &d, nil
		}
	}

	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil && ms > 0 {
		d := Day(time.UnixMilli(ms).UTC())
		return &d, nil
	}

	return nil, fmt.Errorf("unrecognized date %q", raw)
}

// FormatDate renders a canonical date as "YYYY-MM-DD", or "" for nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// FormatDateUA renders a canonical date as "DD.MM.YYYY", the form used in
// user-facing documents and the planner prompt.
func FormatDateUA(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02.01.2006")
}
