package usecase

import (
	"context"

	"insight-srv/internal/model"
	"insight-srv/pkg/backend"
)

func (uc *implUseCase) ListKeywordTrends(ctx context.Context, companyID string) ([]model.KeywordTrend, error) {
	id, err := normalizeCompany(companyID)
	if err != nil {
		return nil, err
	}
	if uc.cfg.UseMock {
		return uc.mock.KeywordTrends(), nil
	}

	keywords, err := cached(ctx, uc, cacheKey("keywords", id), func(ctx context.Context) ([]backend.Keyword, error) {
		return uc.backend.GetKeywords(ctx, id)
	})
	if err != nil {
		uc.fallback(ctx, "ListKeywordTrends", err)
		return uc.mock.KeywordTrends(), nil
	}

	trends := make([]model.KeywordTrend, 0, len(keywords))
	for _, k := range keywords {
		if k.Keyword == "" {
			continue
		}
		trends = append(trends, model.KeywordTrend{
			Keyword:   k.Keyword,
			Count:     k.Count,
			Sentiment: model.SentimentNeutral,
			Trend:     model.TrendSteady,
			Intensity: min(100, max(0, k.Count)),
		})
	}
	return trends, nil
}

func (uc *implUseCase) ListThemes(ctx context.Context, companyID string) ([]string, error) {
	id, err := normalizeCompany(companyID)
	if err != nil {
		return nil, err
	}
	if uc.cfg.UseMock {
		return uc.mock.Themes(), nil
	}

	themes, err := cached(ctx, uc, cacheKey("themes", id), func(ctx context.Context) ([]string, error) {
		return uc.backend.GetThemes(ctx, id)
	})
	if err != nil {
		uc.fallback(ctx, "ListThemes", err)
		return uc.mock.Themes(), nil
	}
	if themes == nil {
		themes = []string{}
	}
	return themes, nil
}
