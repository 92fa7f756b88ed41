// Package datetime provides date and time utility functions.
package datetime

import (
	"time"

	"github.com/FishheadNate/Loan-Payment-Tracker/pkg/constants"
)

const (
	// InputDateLayout is the date format expected on the command line.
	InputDateLayout = constants.InputDateLayout

	// LongDateLayout is the output date format used in the schedule and
	// ledger files.
	LongDateLayout = constants.LongDateLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseInputDate parses an MM-DD-YYYY date string.
func ParseInputDate(dateStr string) (time.Time, error) {
	return time.Parse(InputDateLayout, dateStr)
}

// ParseLongDate parses a long-form date string such as "March 10, 2024".
func ParseLongDate(dateStr string) (time.Time, error) {
	return time.Parse(LongDateLayout, dateStr)
}

// FormatLongDate formats a date in the long form used in the schedule and
// ledger files.
func FormatLongDate(t time.Time) string {
	return t.Format(LongDateLayout)
}

// OffsetDateByMonths returns the date offset by the given number of calendar
// months relative to the given date.
func OffsetDateByMonths(t time.Time, months int) time.Time {
	return t.AddDate(0, months, 0)
}

// WholeDaysBetween returns the number of whole days from one date to another.
// The result is negative when to precedes from.
func WholeDaysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// Midnight truncates a time to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
