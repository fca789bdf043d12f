package filter

import (
	"fmt"
	"time"
)

// DateRange restricts records to a trailing window.
type DateRange string

const (
	Range24h    DateRange = "24h"
	Range7d     DateRange = "7d"
	Range30d    DateRange = "30d"
	RangeCustom DateRange = "custom"
	RangeAll    DateRange = "all"
)

// ParseDateRange parses s. An empty string yields def.
func ParseDateRange(s string, def DateRange) (DateRange, error) {
	if s == "" {
		return def, nil
	}
	r := DateRange(s)
	switch r {
	case Range24h, Range7d, Range30d, RangeCustom, RangeAll:
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDateRange, s)
}

// maxAge is the window length, or 0 for unbounded ranges.
func (r DateRange) maxAge() time.Duration {
	switch r {
	case Range24h:
		return 24 * time.Hour
	case Range7d:
		return 7 * 24 * time.Hour
	case Range30d:
		return 30 * 24 * time.Hour
	}
	return 0
}

// Allows reports whether ts falls inside the window ending at now.
// Custom ranges carry no bounds yet and allow everything.
func (r DateRange) Allows(ts, now time.Time) bool {
	limit := r.maxAge()
	if limit == 0 {
		return true
	}
	return now.Sub(ts) <= limit
}
