package usecase

import (
	"context"

	"insight-srv/internal/appstate"
	"insight-srv/internal/dashboard"
	"insight-srv/internal/filter"
	"insight-srv/internal/model"

	"golang.org/x/sync/errgroup"
)

func (uc *implUseCase) Alerts(ctx context.Context, brand string, q dashboard.AlertsQuery) dashboard.AlertsPage {
	meta, gen := uc.begin(appstate.PageAlerts, brand)
	if q.SpikeMetric == "" {
		q.SpikeMetric = dashboard.DefaultSpikeMetric
	}

	var (
		alerts   []model.Alert
		spikes   []model.SpikeDetection
		keywords []model.KeywordTrend
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		alerts, err = uc.data.ListAlerts(gctx, meta.CompanyID)
		return err
	})
	g.Go(func() (err error) {
		spikes, err = uc.data.ListSpikeDetections(gctx, meta.CompanyID)
		return err
	})
	g.Go(func() (err error) {
		keywords, err = uc.data.ListKeywordTrends(gctx, meta.CompanyID)
		return err
	})

	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "dashboard.usecase.Alerts: Failed to load %s: %v", meta.CompanyID, err)
		uc.finish(ctx, appstate.PageAlerts, &meta, gen)
		return dashboard.AlertsPage{PageMeta: meta, SpikeMetric: q.SpikeMetric}
	}

	charted := filter.SpikesByMetric(spikes, q.SpikeMetric)
	page := dashboard.AlertsPage{
		PageMeta:         meta,
		Alerts:           q.Filter.Apply(alerts, uc.now()),
		TotalAlerts:      len(alerts),
		Spikes:           charted,
		SpikeMetric:      q.SpikeMetric,
		AverageThreshold: filter.AverageThreshold(charted),
		CrisisKeywords:   filter.CrisisKeywords(keywords),
	}
	uc.finish(ctx, appstate.PageAlerts, &page.PageMeta, gen)
	return page
}
