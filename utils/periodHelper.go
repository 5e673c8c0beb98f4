package utils

import (
	"fmt"
	"time"
)

// Period keys are sortable strings: lexicographic order on a key equals
// chronological order on the period it names.

func DailyKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func WeeklyKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

func MonthlyKey(t time.Time) string {
	return t.Format("2006-01")
}

func DailyLabel(t time.Time) string {
	return t.Format("02 Jan")
}

func WeeklyLabel(t time.Time) string {
	_, week := t.ISOWeek()
	return Ordinal(week) + " week"
}

func MonthlyLabel(t time.Time) string {
	return t.Format("Jan 2006")
}

// StartOfDay and EndOfDay bound a calendar day in the timestamp's location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
