package appstate

import "errors"

var (
	ErrBrandRequired      = errors.New("appstate: brand is required")
	ErrInvalidAlertCount  = errors.New("appstate: alert count must not be negative")
	ErrInfluencerRequired = errors.New("appstate: influencer id is required")
	ErrNotInComparison    = errors.New("appstate: influencer is not in the comparison")
)
