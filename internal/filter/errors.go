package filter

import "errors"

var (
	ErrInvalidDateRange = errors.New("filter: invalid date range")
	ErrInvalidSortKey   = errors.New("filter: invalid sort key")
	ErrComparisonFull   = errors.New("You can only compare up to 3 influencers at a time")
)
