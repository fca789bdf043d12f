package mockdata

import (
	"insight-srv/internal/model"
	"insight-srv/pkg/random"
)

// ScoreBand is a half-open score range [Min, Max).
type ScoreBand struct{ Min, Max int }

// RiskBands are the score ranges of generated summaries.
var RiskBands = map[model.RiskLevel]ScoreBand{
	model.RiskGreen: {20, 40},
	model.RiskAmber: {40, 70},
	model.RiskRed:   {70, 95},
}

func (g *implGenerator) RiskSummary() model.RiskSummary {
	level := random.Item(g.src, model.RiskLevels)
	band := RiskBands[level]

	return model.RiskSummary{
		CurrentLevel:   level,
		Score:          random.Int(g.src, band.Min, band.Max),
		Trend:          random.Item(g.src, model.Trends),
		LastUpdated:    g.now(),
		TopThreats:     append([]string(nil), riskThreats...),
		Recommendation: riskRecommendation(level),
	}
}

func riskRecommendation(level model.RiskLevel) string {
	switch level {
	case model.RiskRed:
		return "Immediate action required: Address customer concerns and prepare crisis response"
	case model.RiskAmber:
		return "Monitor closely: Engage with influencers and address emerging issues"
	default:
		return "Maintain current strategy: Continue positive engagement"
	}
}

func (g *implGenerator) Companies() []model.Company {
	return model.DefaultCompanies()
}
