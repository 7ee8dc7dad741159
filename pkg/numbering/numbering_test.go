package numbering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	day := time.Date(2026, time.September, 1, 14, 30, 0, 0, time.Local)

	t.Run("job card number", func(t *testing.T) {
		assert.Equal(t, "JC-2026-0901-0001", Format(JobCardPrefix, day, 1))
	})

	t.Run("invoice number", func(t *testing.T) {
		assert.Equal(t, "INV-2026-0901-0042", Format(InvoicePrefix, day, 42))
	})

	t.Run("sequence pads to four digits", func(t *testing.T) {
		assert.Equal(t, "JC-2026-0901-0100", Format(JobCardPrefix, day, 100))
		assert.Equal(t, "JC-2026-0901-12345", Format(JobCardPrefix, day, 12345))
	})

	t.Run("single digit month and day are zero padded", func(t *testing.T) {
		jan := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.Local)
		assert.Equal(t, "INV-2026-0105-0007", Format(InvoicePrefix, jan, 7))
	})
}

func TestDayWindow(t *testing.T) {
	at := time.Date(2026, time.September, 1, 14, 30, 45, 0, time.Local)
	start, end := DayWindow(at)

	assert.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.Local), start)
	assert.True(t, end.Before(time.Date(2026, time.September, 2, 0, 0, 0, 0, time.Local)))
	assert.True(t, end.After(at))
}

func TestDayKey(t *testing.T) {
	at := time.Date(2026, time.September, 1, 23, 59, 59, 0, time.Local)
	assert.Equal(t, "2026-09-01", DayKey(at))
}
