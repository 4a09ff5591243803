package models

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the calendar date format used for review dates and week starts.
const DateLayout = "2006-01-02"

var dateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDate parses a YYYY-MM-DD calendar date. Dates carry no timezone and
// are interpreted in UTC.
func ParseDate(s string) (time.Time, error) {
	if !dateShape.MatchString(s) {
		return time.Time{}, fmt.Errorf("date %q must use YYYY-MM-DD", s)
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q is not a calendar date", s)
	}
	return t, nil
}

// IsDate reports whether s is a well-formed calendar date.
func IsDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// IsMonday reports whether s is a well-formed date that falls on a Monday.
func IsMonday(s string) bool {
	t, err := ParseDate(s)
	if err != nil {
		return false
	}
	return t.Weekday() == time.Monday
}

// WeekStart returns the Monday of the week containing t, formatted as a date.
// Sunday belongs to the week that began six days earlier.
func WeekStart(t time.Time) string {
	offset := int(t.Weekday()) - int(time.Monday)
	if t.Weekday() == time.Sunday {
		offset = 6
	}
	return t.AddDate(0, 0, -offset).Format(DateLayout)
}

// FormatDate formats t as a calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
