package scoring

import (
	"time"

	"github.com/shopspring/decimal"
)

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}

// ScaleByFraming scales a tier by the framing score: tier * framing / 10,
// rounded half up to an integer.
func ScaleByFraming(tier float64, framing int) float64 {
	return roundHalfUp(tier * float64(framing) / 10)
}

// roundHalfUp rounds to the nearest integer with ties away from zero,
// deciding ties on the decimal representation of v.
func roundHalfUp(v float64) float64 {
	return decimal.NewFromFloat(v).Round(0).InexactFloat64()
}

// tier3 maps v against three ascending "greater than" thresholds.
func tier3(v, t1, t2, t3 float64, low, mid, high, veryHigh float64) float64 {
	switch {
	case v > t3:
		return veryHigh
	case v > t2:
		return high
	case v > t1:
		return mid
	default:
		return low
	}
}

// roundedYears is the elapsed days between from and to divided by 365,
// rounded half up.
func roundedYears(from, to time.Time) float64 {
	days := to.Sub(from).Hours() / 24
	return roundHalfUp(float64(int64(days)) / 365)
}

// wholeYears is the number of complete calendar years from from to to,
// negative when to precedes from.
func wholeYears(from, to time.Time) int {
	if to.Before(from) {
		return -wholeYears(to, from)
	}
	years := to.Year() - from.Year()
	if addYears(from, years).After(to) {
		years--
	}
	return years
}

// addYears adds n calendar years, clamping Feb 29 to Feb 28 on non-leap
// targets instead of rolling into March.
func addYears(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	target := y + n
	if m == time.February && d == 29 && !isLeap(target) {
		d = 28
	}
	return time.Date(target, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
