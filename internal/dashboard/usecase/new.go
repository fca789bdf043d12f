package usecase

import (
	"time"

	"insight-srv/internal/analytics"
	"insight-srv/internal/appstate"
	"insight-srv/internal/dashboard"
	"insight-srv/internal/xai"
	"insight-srv/pkg/log"
)

type implUseCase struct {
	l     log.Logger
	data  analytics.UseCase
	xai   xai.Generator
	state appstate.Store
	now   func() time.Time
}

// New - Factory function. clock may be nil.
func New(l log.Logger, data analytics.UseCase, xaiGen xai.Generator, state appstate.Store, clock func() time.Time) dashboard.UseCase {
	if clock == nil {
		clock = time.Now
	}
	return &implUseCase{
		l:     l,
		data:  data,
		xai:   xaiGen,
		state: state,
		now:   clock,
	}
}
