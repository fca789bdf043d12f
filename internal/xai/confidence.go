package xai

import "math"

const (
	minConfidence = 50
	maxConfidence = 95
)

// ConfidenceScore combines sample size and consistency into a score clamped to [50, 95].
func (g *implGenerator) ConfidenceScore(cc ConfidenceContext) Confidence {
	score := float64(cc.DataPoints)/100*50 + cc.Consistency*50
	score = math.Max(minConfidence, math.Min(maxConfidence, score))

	c := Confidence{Score: score, DataQuality: dataQuality(cc.DataPoints)}
	switch {
	case score >= 90:
		c.Level = ConfidenceVeryHigh
		c.Explanation = "Very high confidence based on large sample size and consistent patterns"
	case score >= 75:
		c.Level = ConfidenceHigh
		c.Explanation = "High confidence with sufficient data and clear trends"
	case score >= 60:
		c.Level = ConfidenceMedium
		c.Explanation = "Moderate confidence - monitor for additional data points"
	default:
		c.Level = ConfidenceLow
		c.Explanation = "Low confidence due to limited data or inconsistent patterns"
	}
	return c
}

func dataQuality(dataPoints int) string {
	switch {
	case dataPoints >= 100:
		return "Excellent"
	case dataPoints >= 50:
		return "Good"
	case dataPoints >= 20:
		return "Fair"
	default:
		return "Limited"
	}
}
