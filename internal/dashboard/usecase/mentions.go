package usecase

import (
	"context"

	"insight-srv/internal/analytics"
	"insight-srv/internal/appstate"
	"insight-srv/internal/dashboard"
	"insight-srv/internal/filter"
	"insight-srv/internal/model"
	"insight-srv/pkg/paginator"
)

func (uc *implUseCase) Mentions(ctx context.Context, brand string, q dashboard.MentionsQuery) dashboard.MentionsPage {
	meta, gen := uc.begin(appstate.PageMentions, brand)

	mentions, err := uc.data.ListMentions(ctx, meta.CompanyID, analytics.MentionQuery{})
	if err != nil {
		uc.l.Errorf(ctx, "dashboard.usecase.Mentions: Failed to load %s: %v", meta.CompanyID, err)
		uc.finish(ctx, appstate.PageMentions, &meta, gen)
		return dashboard.MentionsPage{PageMeta: meta, Mentions: []model.Mention{}}
	}

	filtered := q.Filter.Apply(mentions, uc.now())
	items, p := paginator.Page(filtered, q.Page)
	page := dashboard.MentionsPage{
		PageMeta:  meta,
		Mentions:  items,
		Stats:     filter.NewMentionStats(filtered),
		Paginator: p.ToResponse(),
	}
	uc.finish(ctx, appstate.PageMentions, &page.PageMeta, gen)
	return page
}
