package numbering

import (
	"fmt"
	"time"
)

// Prefixes for the document numbers issued by the garage.
const (
	JobCardPrefix = "JC"
	InvoicePrefix = "INV"
)

// Format renders a date-scoped document number, e.g. JC-2024-1215-0001.
// The sequence is 1-based and zero-padded to 4 digits within its calendar day.
func Format(prefix string, day time.Time, seq int) string {
	return fmt.Sprintf("%s-%d-%02d%02d-%04d", prefix, day.Year(), int(day.Month()), day.Day(), seq)
}

// DayWindow returns the inclusive start and end of the local calendar day
// containing t.
func DayWindow(t time.Time) (time.Time, time.Time) {
	year, month, day := t.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}

// DayKey returns the canonical key for a day window, used to scope the
// per-day counter rows.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
