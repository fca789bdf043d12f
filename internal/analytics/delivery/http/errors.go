package http

import (
	"errors"

	"insight-srv/internal/analytics"
	pkgErrors "insight-srv/pkg/errors"
)

var (
	errCompanyRequired = pkgErrors.NewHTTPError(
		400, "Company id is required",
	)
	errAlertIDRequired = pkgErrors.NewHTTPError(
		400, "Alert id is required",
	)
	errInvalidSource = pkgErrors.NewHTTPError(
		400, "Source must be one of news, reddit, twitter",
	)
	errInvalidLimit = pkgErrors.NewHTTPError(
		400, "Limit must be a non-negative integer",
	)
	errInvalidBody = pkgErrors.NewHTTPError(
		400, "Invalid request body",
	)
	errInvalidKind = pkgErrors.NewHTTPError(
		400, "Kind must be one of alert, sentiment, risk",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analytics.ErrCompanyRequired):
		return errCompanyRequired
	case errors.Is(err, analytics.ErrAlertIDRequired):
		return errAlertIDRequired
	case errors.Is(err, analytics.ErrInvalidSource):
		return errInvalidSource
	case errors.Is(err, analytics.ErrInvalidLimit):
		return errInvalidLimit
	default:
		panic(err)
	}
}
