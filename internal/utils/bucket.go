package utils

import (
	"fmt"
	"time"

	"volunteerhub-backend/internal/domain"
)

// Granularity selects the bucket width for time-series aggregation.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// ParseGranularity maps a caller-supplied group-by string to a Granularity,
// defaulting to day.
func ParseGranularity(s string) Granularity {
	switch Granularity(s) {
	case GranularityWeek:
		return GranularityWeek
	case GranularityMonth:
		return GranularityMonth
	default:
		return GranularityDay
	}
}

// PeriodStart truncates t to the start of its period at the given
// granularity. Weeks start on Monday.
func (g Granularity) PeriodStart(t time.Time) time.Time {
	switch g {
	case GranularityWeek:
		return StartOfWeek(t)
	case GranularityMonth:
		return StartOfMonth(t)
	default:
		return StartOfDay(t)
	}
}

// next advances a period start to the following period.
func (g Granularity) next(t time.Time) time.Time {
	switch g {
	case GranularityWeek:
		return t.AddDate(0, 0, 7)
	case GranularityMonth:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}

// Label renders a period start as a stable, sortable string:
// yyyy-mm-dd for days, yyyy-Www (ISO week) for weeks, and yyyy-mm-01 for
// months.
func (g Granularity) Label(t time.Time) string {
	switch g {
	case GranularityWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case GranularityMonth:
		return t.Format("2006-01") + "-01"
	default:
		return t.Format("2006-01-02")
	}
}

// PeriodsBetween returns every period start covering [rng.From, rng.To] at
// the given granularity, ascending. An inverted range yields no periods.
func PeriodsBetween(rng DateRange, g Granularity) []time.Time {
	if rng.To.Before(rng.From) {
		return nil
	}
	var periods []time.Time
	for p := g.PeriodStart(rng.From); !p.After(rng.To); p = g.next(p) {
		periods = append(periods, p)
	}
	return periods
}

// BucketHours groups hour rows into zero-filled buckets across the range.
// Each bucket sums hours, counts rows, and counts distinct volunteers.
// Rows outside the range are dropped; every period in the range appears in
// the output even when empty.
func BucketHours(rng DateRange, g Granularity, rows []domain.HourRow) []domain.HoursTrendPoint {
	periods := PeriodsBetween(rng, g)
	points := make([]domain.HoursTrendPoint, len(periods))
	index := make(map[string]int, len(periods))
	users := make([]map[int32]struct{}, len(periods))
	for i, p := range periods {
		label := g.Label(p)
		points[i] = domain.HoursTrendPoint{Period: label}
		index[label] = i
		users[i] = make(map[int32]struct{})
	}

	for _, row := range rows {
		i, ok := index[g.Label(g.PeriodStart(row.Date))]
		if !ok {
			continue
		}
		points[i].TotalHours += row.Hours
		points[i].LogCount++
		users[i][row.UserID] = struct{}{}
	}
	for i := range points {
		points[i].VolunteerCount = int32(len(users[i]))
	}
	return points
}

// BucketCounts groups timestamps into zero-filled count buckets across the
// range; used for growth trend series.
func BucketCounts(rng DateRange, g Granularity, timestamps []time.Time) []domain.CountTrendPoint {
	periods := PeriodsBetween(rng, g)
	points := make([]domain.CountTrendPoint, len(periods))
	index := make(map[string]int, len(periods))
	for i, p := range periods {
		label := g.Label(p)
		points[i] = domain.CountTrendPoint{Period: label}
		index[label] = i
	}

	for _, ts := range timestamps {
		if i, ok := index[g.Label(g.PeriodStart(ts))]; ok {
			points[i].Count++
		}
	}
	return points
}
