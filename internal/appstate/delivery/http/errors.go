package http

import (
	"errors"

	"insight-srv/internal/appstate"
	"insight-srv/internal/filter"
	pkgErrors "insight-srv/pkg/errors"
)

var (
	errInvalidBody = pkgErrors.NewHTTPError(
		400, "Invalid request body",
	)
	errBrandRequired = pkgErrors.NewHTTPError(
		400, "Brand is required",
	)
	errInvalidAlertCount = pkgErrors.NewHTTPError(
		400, "Alert count must not be negative",
	)
	errInfluencerRequired = pkgErrors.NewHTTPError(
		400, "Influencer id is required",
	)
	errComparisonFull = pkgErrors.NewHTTPError(
		409, filter.ErrComparisonFull.Error(),
	)
	errNotInComparison = pkgErrors.NewHTTPError(
		404, "Influencer is not in the comparison",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, appstate.ErrBrandRequired):
		return errBrandRequired
	case errors.Is(err, appstate.ErrInvalidAlertCount):
		return errInvalidAlertCount
	case errors.Is(err, appstate.ErrInfluencerRequired):
		return errInfluencerRequired
	case errors.Is(err, filter.ErrComparisonFull):
		return errComparisonFull
	case errors.Is(err, appstate.ErrNotInComparison):
		return errNotInComparison
	default:
		panic(err)
	}
}
