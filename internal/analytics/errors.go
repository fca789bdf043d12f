package analytics

import "errors"

// Domain errors
var (
	ErrCompanyRequired = errors.New("analytics: company id is required")
	ErrAlertIDRequired = errors.New("analytics: alert id is required")
	ErrInvalidSource   = errors.New("analytics: invalid mention source")
	ErrInvalidLimit    = errors.New("analytics: limit must not be negative")
)
