package random

import "time"

// Item picks a uniformly random element. It returns the zero value for an empty slice.
func Item[T any](s Source, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[s.IntN(len(items))]
}

// Float returns a value in [min, max).
func Float(s Source, min, max float64) float64 {
	return min + s.Float64()*(max-min)
}

// Int returns floor of a value drawn from [min, max), i.e. an integer in [min, max).
func Int(s Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + s.IntN(max-min)
}

// Date returns a time uniformly distributed in [now - daysAgoMax days, now].
func Date(s Source, now time.Time, daysAgoMax int) time.Time {
	if daysAgoMax <= 0 {
		return now
	}
	span := time.Duration(daysAgoMax) * 24 * time.Hour
	return now.Add(-time.Duration(s.Float64() * float64(span)))
}
