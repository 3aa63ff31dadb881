package domain

import (
	"math"
	"time"
)

// Decay returns the recency multiplier of an event: rate^days, where days is the
// fractional number of days between eventTime and now.
//
// Events stamped in the future count as happening now, so the result stays within
// (0, 1] for any rate in (0, 1].
func Decay(eventTime, now time.Time, rate float64) float64 {
	days := now.Sub(eventTime).Hours() / 24
	if days <= 0 {
		return 1
	}
	return math.Pow(rate, days)
}
