package usecase

import (
	"context"

	"insight-srv/internal/appstate"
	"insight-srv/internal/dashboard"
	"insight-srv/internal/filter"
	"insight-srv/internal/model"

	"golang.org/x/sync/errgroup"
)

func (uc *implUseCase) Overview(ctx context.Context, brand string) dashboard.OverviewPage {
	meta, gen := uc.begin(appstate.PageOverview, brand)

	var (
		risk        model.RiskSummary
		sentiment   []model.SentimentData
		alerts      []model.Alert
		influencers []model.Influencer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		risk, err = uc.data.GetRiskSummary(gctx, meta.CompanyID)
		return err
	})
	g.Go(func() (err error) {
		sentiment, err = uc.data.GetSentimentSeries(gctx, meta.CompanyID)
		return err
	})
	g.Go(func() (err error) {
		alerts, err = uc.data.ListAlerts(gctx, meta.CompanyID)
		return err
	})
	g.Go(func() (err error) {
		influencers, err = uc.data.ListInfluencers(gctx, meta.CompanyID)
		return err
	})

	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "dashboard.usecase.Overview: Failed to load %s: %v", meta.CompanyID, err)
		uc.finish(ctx, appstate.PageOverview, &meta, gen)
		return dashboard.OverviewPage{PageMeta: meta}
	}

	page := dashboard.OverviewPage{
		PageMeta:     meta,
		Risk:         &risk,
		Sentiment:    sentiment,
		Alerts:       alerts,
		Influencers:  influencers,
		UnreadAlerts: filter.UnreadCount(alerts),
	}

	applied, err := uc.state.SetAlertCountIfCurrent(appstate.PageOverview, gen, page.UnreadAlerts)
	if err != nil {
		uc.l.Warnf(ctx, "dashboard.usecase.Overview: SetAlertCountIfCurrent: %v", err)
	}
	if !applied {
		uc.finish(ctx, appstate.PageOverview, &page.PageMeta, gen)
	}
	return page
}
