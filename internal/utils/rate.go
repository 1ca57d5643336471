package utils

import (
	"math"

	"volunteerhub-backend/internal/logger"
)

// Rate computes numerator/denominator as a percentage rounded to one
// decimal place (round half up).
//
// A zero denominator yields 100: nothing required means fully satisfied.
// That policy holds for every rate in the system (compliance, fill,
// show-up, retention). A numerator larger than the denominator is a data
// anomaly (scoping drift between two queries); it is clamped to 100 and
// logged, never raised. Negative inputs clamp to 0.
func Rate(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 100
	}
	pct := Round1(numerator / denominator * 100)
	if pct > 100 {
		logger.Warn("rate numerator exceeds denominator, clamping",
			"numerator", numerator, "denominator", denominator)
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// Average computes total/count rounded to one decimal place, returning 0
// when count is 0. Averages deliberately diverge from Rate's
// zero-denominator policy: "no users" means an average of nothing, not a
// fully-satisfied 100.
func Average(total float64, count int64) float64 {
	if count == 0 {
		return 0
	}
	return Round1(total / float64(count))
}

// Change computes the signed percentage change from previous to current,
// rounded to one decimal place. A zero previous yields 100 when current is
// positive and 0 otherwise. Unlike Rate, the result is not clamped.
func Change(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return Round1((current - previous) / previous * 100)
}

// Round1 rounds to one decimal place, half away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
