package handlers

import (
	"errors"
	"time"
)

// Dates and times-of-day cross the API as ISO strings and are stored
// that way: exact-slot equality and inclusive range queries work the
// same on every backend, and no timezone math is involved.

func parseDate(dateStr string) (string, error) {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return "", err
	}
	return t.Format("2006-01-02"), nil
}

// parseTimeOfDay accepts HH:MM or HH:MM:SS and normalizes to HH:MM:SS.
func parseTimeOfDay(timeStr string) (string, error) {
	if t, err := time.Parse("15:04:05", timeStr); err == nil {
		return t.Format("15:04:05"), nil
	}
	if t, err := time.Parse("15:04", timeStr); err == nil {
		return t.Format("15:04:05"), nil
	}
	return "", errors.New("invalid time of day")
}

func parseDateRange(fromStr, toStr string) (string, string, error) {
	from, err := parseDate(fromStr)
	if err != nil {
		return "", "", err
	}
	to, err := parseDate(toStr)
	if err != nil {
		return "", "", err
	}
	if from > to {
		return "", "", errors.New("reversed date range")
	}
	return from, to, nil
}
