package utils

import (
	"time"

	"pawplan/models"
)

// The cancellation policy boundaries are defined on whole hours and ISO week
// numbers, so every call site goes through these helpers rather than doing
// its own arithmetic.

// WholeHoursUntil returns the number of whole hours from 'at' until 'event',
// truncated toward zero. Negative when 'at' is after 'event'.
func WholeHoursUntil(event, at time.Time) int {
	return int(event.Sub(at).Hours())
}

// ISOWeekOf returns the ISO 8601 year and week number of a date.
func ISOWeekOf(t time.Time) (year, week int) {
	return t.ISOWeek()
}

// MondayOfISOWeek returns the Monday starting the given ISO (year, week),
// at midnight UTC. January 4th is always inside ISO week 1.
func MondayOfISOWeek(year, week int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	wd := int(jan4.Weekday())
	if wd == 0 {
		wd = 7 // Sunday
	}
	monday1 := jan4.AddDate(0, 0, 1-wd)
	return monday1.AddDate(0, 0, (week-1)*7)
}

// DateOfWorkDay returns the calendar date of a business weekday within an
// ISO (year, week).
func DateOfWorkDay(year, week int, day models.WorkDay) (time.Time, error) {
	idx, err := day.Index()
	if err != nil {
		return time.Time{}, err
	}
	return MondayOfISOWeek(year, week).AddDate(0, 0, idx), nil
}

// NextISOWeek returns the ISO (year, week) immediately following the given one.
func NextISOWeek(year, week int) (int, int) {
	monday := MondayOfISOWeek(year, week).AddDate(0, 0, 7)
	return monday.ISOWeek()
}

// SameDay reports whether two instants fall on the same calendar date (UTC).
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
