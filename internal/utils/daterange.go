package utils

import (
	"fmt"
	"time"

	"volunteerhub-backend/internal/domain"
)

// DateRange is a resolved [From, To] window. From is inclusive, To exclusive
// for bucket boundaries; repository queries treat both ends inclusively at
// second precision, which is equivalent for our aggregates.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Date range presets accepted by ResolveDateRange.
const (
	PresetToday        = "today"
	PresetWeek         = "week"
	PresetMonth        = "month"
	PresetQuarter      = "quarter"
	PresetYear         = "year"
	PresetLast30Days   = "last30days"
	PresetLast90Days   = "last90days"
	PresetLast12Months = "last12months"
)

// ResolveDateRange turns a preset or explicit from/to pair into a canonical
// range anchored at now.
//
// Preset wins over explicit dates. An unrecognized preset falls back to the
// trailing 12 months, as does a fully empty request. Explicit dates must be
// ISO-8601 (yyyy-mm-dd or RFC 3339); anything else fails with
// domain.ErrInvalidDateRange. An explicit from after to is passed through
// unchanged: downstream aggregations see an empty window and return zero
// results rather than an error.
func ResolveDateRange(preset, fromStr, toStr string, now time.Time) (DateRange, error) {
	if preset != "" {
		return resolvePreset(preset, now), nil
	}

	if fromStr == "" && toStr == "" {
		return DateRange{From: now.AddDate(0, -12, 0), To: now}, nil
	}

	from, err := parseISODate(fromStr)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: from %q", domain.ErrInvalidDateRange, fromStr)
	}
	to, err := parseISODate(toStr)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: to %q", domain.ErrInvalidDateRange, toStr)
	}
	return DateRange{From: from, To: to}, nil
}

func resolvePreset(preset string, now time.Time) DateRange {
	switch preset {
	case PresetToday:
		start := StartOfDay(now)
		return DateRange{From: start, To: start.AddDate(0, 0, 1).Add(-time.Second)}
	case PresetWeek:
		start := StartOfWeek(now)
		return DateRange{From: start, To: start.AddDate(0, 0, 7).Add(-time.Second)}
	case PresetMonth:
		start := StartOfMonth(now)
		return DateRange{From: start, To: start.AddDate(0, 1, 0).Add(-time.Second)}
	case PresetQuarter:
		start := StartOfQuarter(now)
		return DateRange{From: start, To: start.AddDate(0, 3, 0).Add(-time.Second)}
	case PresetYear:
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return DateRange{From: start, To: start.AddDate(1, 0, 0).Add(-time.Second)}
	case PresetLast30Days:
		return DateRange{From: now.AddDate(0, 0, -30), To: now}
	case PresetLast90Days:
		return DateRange{From: now.AddDate(0, 0, -90), To: now}
	default:
		// last12months and anything unrecognized
		return DateRange{From: now.AddDate(0, -12, 0), To: now}
	}
}

func parseISODate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Monday midnight at or before t.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

// StartOfMonth returns the first of t's month at midnight.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// StartOfQuarter returns the first day of t's calendar quarter at midnight.
func StartOfQuarter(t time.Time) time.Time {
	quarterMonth := time.Month(((int(t.Month())-1)/3)*3 + 1)
	return time.Date(t.Year(), quarterMonth, 1, 0, 0, 0, 0, t.Location())
}
