package usecase

import (
	"context"

	"insight-srv/internal/appstate"
	"insight-srv/internal/dashboard"
	"insight-srv/internal/filter"
)

func (uc *implUseCase) Influencers(ctx context.Context, brand string, f filter.InfluencerFilter) dashboard.InfluencersPage {
	meta, gen := uc.begin(appstate.PageInfluencers, brand)
	comparison := uc.state.Snapshot().Comparison

	influencers, err := uc.data.ListInfluencers(ctx, meta.CompanyID)
	if err != nil {
		uc.l.Errorf(ctx, "dashboard.usecase.Influencers: Failed to load %s: %v", meta.CompanyID, err)
		uc.finish(ctx, appstate.PageInfluencers, &meta, gen)
		return dashboard.InfluencersPage{PageMeta: meta, Comparison: comparison}
	}

	page := dashboard.InfluencersPage{
		PageMeta:         meta,
		Influencers:      f.Apply(influencers),
		Total:            len(influencers),
		HasActiveFilters: f.HasActiveFilters(),
		Comparison:       comparison,
	}
	uc.finish(ctx, appstate.PageInfluencers, &page.PageMeta, gen)
	return page
}
