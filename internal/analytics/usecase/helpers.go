package usecase

import (
	"context"

	"insight-srv/internal/analytics"
	"insight-srv/internal/model"
	"insight-srv/pkg/backend"

	"golang.org/x/sync/errgroup"
)

func normalizeCompany(companyID string) (string, error) {
	id := model.NormalizeCompanyID(companyID)
	if id == "" {
		return "", analytics.ErrCompanyRequired
	}
	return id, nil
}

func (uc *implUseCase) fallback(ctx context.Context, op string, err error) {
	uc.l.Warnf(ctx, "analytics.usecase.%s: backend unavailable, serving generated data: %v", op, err)
}

func (uc *implUseCase) getSentiment(ctx context.Context, companyID string) (backend.Sentiment, error) {
	return cached(ctx, uc, cacheKey("sentiment", companyID), func(ctx context.Context) (backend.Sentiment, error) {
		return uc.backend.GetSentiment(ctx, companyID)
	})
}

func (uc *implUseCase) getMentions(ctx context.Context, source, companyID string) ([]backend.RawMention, error) {
	return cached(ctx, uc, cacheKey(source, companyID), func(ctx context.Context) ([]backend.RawMention, error) {
		return uc.backend.GetMentions(ctx, source, companyID)
	})
}

// sourcedMention is a raw mention with the source it was fetched from.
type sourcedMention struct {
	source string
	raw    backend.RawMention
}

// fetchMentions loads sources in parallel. The result keeps the order of sources and fails
// as a whole when any source fails.
func (uc *implUseCase) fetchMentions(ctx context.Context, companyID string, sources []string) ([]sourcedMention, error) {
	results := make([][]backend.RawMention, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, source := range sources {
		g.Go(func() error {
			list, err := uc.getMentions(gctx, source, companyID)
			if err != nil {
				return err
			}
			results[i] = list
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []sourcedMention
	for i, list := range results {
		for _, raw := range list {
			all = append(all, sourcedMention{source: sources[i], raw: raw})
		}
	}
	return all, nil
}
