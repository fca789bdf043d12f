package usecase

import (
	"context"
	"sort"

	"insight-srv/internal/analytics"
	"insight-srv/internal/mockdata"
	"insight-srv/internal/model"
	"insight-srv/pkg/backend"
)

func (uc *implUseCase) ListMentions(ctx context.Context, companyID string, query analytics.MentionQuery) ([]model.Mention, error) {
	id, err := normalizeCompany(companyID)
	if err != nil {
		return nil, err
	}
	if query.Limit < 0 {
		return nil, analytics.ErrInvalidLimit
	}

	sources := backend.Sources
	if query.Source != "" {
		p, ok := model.ParsePlatform(query.Source)
		if !ok || !isMentionSource(p) {
			return nil, analytics.ErrInvalidSource
		}
		sources = []string{string(p)}
	}

	mockCount := query.Limit
	if mockCount == 0 {
		mockCount = mockdata.DefaultMentionCount
	}
	if uc.cfg.UseMock {
		return uc.mock.Mentions(mockCount), nil
	}

	raws, err := uc.fetchMentions(ctx, id, sources)
	if err != nil {
		uc.fallback(ctx, "ListMentions", err)
		return uc.mock.Mentions(mockCount), nil
	}

	now := uc.now()
	mentions := make([]model.Mention, 0, len(raws))
	for _, r := range raws {
		mentions = append(mentions, toMention(r.raw, r.source, now))
	}

	sort.SliceStable(mentions, func(i, j int) bool {
		return mentions[i].Timestamp.After(mentions[j].Timestamp)
	})
	if query.Limit > 0 && len(mentions) > query.Limit {
		mentions = mentions[:query.Limit]
	}
	return mentions, nil
}

func isMentionSource(p model.Platform) bool {
	for _, s := range model.MentionSources {
		if s == p {
			return true
		}
	}
	return false
}
