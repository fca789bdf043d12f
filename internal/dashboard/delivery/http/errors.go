package http

import (
	pkgErrors "insight-srv/pkg/errors"
)

var (
	errInvalidQuery = pkgErrors.NewHTTPError(
		400, "Invalid query parameters",
	)
	errInvalidSeverity = pkgErrors.NewHTTPError(
		400, "Severity must be one of low, medium, high, critical",
	)
	errInvalidSource = pkgErrors.NewHTTPError(
		400, "Unknown platform",
	)
	errInvalidSentiment = pkgErrors.NewHTTPError(
		400, "Sentiment must be one of positive, neutral, negative",
	)
	errInvalidRange = pkgErrors.NewHTTPError(
		400, "Range must be one of 24h, 7d, 30d, custom, all",
	)
	errInvalidSortKey = pkgErrors.NewHTTPError(
		400, "Sort must be one of matchScore, reach, engagement, toxicity",
	)
)
