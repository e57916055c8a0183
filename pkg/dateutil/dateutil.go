package dateutil

import (
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date layout used as the record key.
const DateLayout = "2006-01-02"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// FirstOfMonth returns the first day of the month in local time
func FirstOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
}

// LastOfMonth returns the last day of the month in local time
func LastOfMonth(year int, month time.Month) time.Time {
	return FirstOfMonth(year, month).AddDate(0, 1, -1)
}

// MonthBounds returns the first and last day of date's month, in date's location
func MonthBounds(date time.Time) (time.Time, time.Time) {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	return first, first.AddDate(0, 1, -1)
}

// EachDay calls fn for every day from start to end inclusive.
// Iteration stops early when fn returns an error.
func EachDay(start, end time.Time, fn func(day time.Time) error) error {
	start = StartOfDay(start)
	end = StartOfDay(end)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if err := fn(day); err != nil {
			return err
		}
	}
	return nil
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// FormatDate formats a date as YYYY-MM-DD
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date in local time
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// MonthPrefix returns the "YYYY-MM-" prefix shared by every date of the month
func MonthPrefix(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d-", year, int(month))
}
