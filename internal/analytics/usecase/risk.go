package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"insight-srv/internal/model"
	"insight-srv/pkg/backend"
)

func (uc *implUseCase) GetRiskSummary(ctx context.Context, companyID string) (model.RiskSummary, error) {
	id, err := normalizeCompany(companyID)
	if err != nil {
		return model.RiskSummary{}, err
	}
	if uc.cfg.UseMock {
		return uc.mock.RiskSummary(), nil
	}

	sentiment, err := uc.getSentiment(ctx, id)
	if err != nil {
		uc.fallback(ctx, "GetRiskSummary", err)
		return uc.mock.RiskSummary(), nil
	}
	return riskFromSentiment(sentiment, uc.now()), nil
}

// riskFromSentiment scores risk from raw sentiment counts.
//
//	negativeRatio > 0.4                        -> red,   70 + nr*30
//	negativeRatio > 0.25 or positiveRatio < 0.3 -> amber, 40 + nr*40
//	otherwise                                   -> green, 20 + nr*30
func riskFromSentiment(s backend.Sentiment, now time.Time) model.RiskSummary {
	total := s.Total()
	if total <= 0 {
		return model.RiskSummary{
			CurrentLevel:   model.RiskAmber,
			Score:          50,
			Trend:          model.TrendStable,
			LastUpdated:    now,
			TopThreats:     []string{"Insufficient data for analysis"},
			Recommendation: "Run analysis to gather data for this company",
		}
	}

	negativeRatio := float64(s.Negative) / float64(total)
	positiveRatio := float64(s.Positive) / float64(total)

	var level model.RiskLevel
	var score int
	switch {
	case negativeRatio > 0.4:
		level = model.RiskRed
		score = int(math.Floor(70 + negativeRatio*30))
	case negativeRatio > 0.25 || positiveRatio < 0.3:
		level = model.RiskAmber
		score = int(math.Floor(40 + negativeRatio*40))
	default:
		level = model.RiskGreen
		score = int(math.Floor(20 + negativeRatio*30))
	}

	return model.RiskSummary{
		CurrentLevel: level,
		Score:        score,
		// The backend reports a single sentiment snapshot, so the trend is always stable.
		Trend:       model.TrendStable,
		LastUpdated: now,
		TopThreats: []string{
			fmt.Sprintf("%d negative mentions detected", s.Negative),
			fmt.Sprintf("Negative sentiment ratio: %.1f%%", negativeRatio*100),
			fmt.Sprintf("Positive sentiment ratio: %.1f%%", positiveRatio*100),
		},
		Recommendation: sentimentRecommendation(level),
	}
}

func sentimentRecommendation(level model.RiskLevel) string {
	switch level {
	case model.RiskRed:
		return "High negative sentiment detected. Review mentions and prepare response strategy."
	case model.RiskAmber:
		return "Monitor sentiment trends closely. Engage with community to improve perception."
	default:
		return "Sentiment is healthy. Continue current engagement strategy."
	}
}
