package usecase

import (
	"context"

	"insight-srv/internal/mockdata"
	"insight-srv/internal/model"
)

func (uc *implUseCase) GetSentimentSeries(ctx context.Context, companyID string) ([]model.SentimentData, error) {
	id, err := normalizeCompany(companyID)
	if err != nil {
		return nil, err
	}
	if uc.cfg.UseMock {
		return uc.mock.SentimentSeries(mockdata.DefaultSentimentDays), nil
	}

	s, err := uc.getSentiment(ctx, id)
	if err != nil {
		uc.fallback(ctx, "GetSentimentSeries", err)
		return uc.mock.SentimentSeries(mockdata.DefaultSentimentDays), nil
	}

	total := s.Total()
	if total == 0 {
		total = 1
	}
	return []model.SentimentData{{
		Timestamp: uc.now(),
		Positive:  s.Positive,
		Neutral:   s.Neutral,
		Negative:  s.Negative,
		Overall:   float64(s.Positive-s.Negative) / float64(total),
	}}, nil
}
