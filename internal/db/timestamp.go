package db

import "time"

// TimestampLayout is the fixed-width UTC layout every timestamp column is
// written in. Fixed width keeps text ordering identical to time ordering.
const TimestampLayout = "2006-01-02T15:04:05.000000000Z"

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
