package xai

import (
	"fmt"
	"math"
	"strings"

	"insight-srv/pkg/random"
)

const defaultSeverity = "high"

// Reasoning fills the why/watch/actions templates for rc.Kind. An empty feature list is
// replaced by the default feature contributions.
func (g *implGenerator) Reasoning(rc ReasoningContext) Reasoning {
	if rc.Severity == "" {
		rc.Severity = defaultSeverity
	}
	if len(rc.Features) == 0 {
		rc.Features = g.FeatureContributions(DefaultFeatureContext())
	}
	top := rc.Features[0]

	switch rc.Kind {
	case KindSentiment:
		return Reasoning{
			Why: []string{
				fmt.Sprintf("Sentiment analysis based on %d recent mentions", random.Int(g.src, 50, 100)),
				fmt.Sprintf("%s%% of signal from %s", percent(top.Contribution), featureLabel(top.Feature)),
				"Consistent pattern across multiple sources",
			},
			Watch: []string{
				"Sentiment trend direction over time",
				"Ratio of positive to negative mentions",
				"Source diversity and credibility",
			},
			Actions: []string{
				"Continue monitoring sentiment shifts",
				"Identify root causes of sentiment changes",
				"Engage with community to improve perception",
			},
		}
	case KindRisk:
		return Reasoning{
			Why: []string{
				fmt.Sprintf("Risk assessment based on %d contributing factors", len(rc.Features)),
				fmt.Sprintf("Primary risk driver: %s (%s%%)", featureLabel(top.Feature), percent(top.Contribution)),
				fmt.Sprintf("%s severity level triggered", capitalize(rc.Severity)),
			},
			Watch: []string{
				"Negative sentiment ratio trends",
				"Mention volume spikes",
				"Source credibility changes",
				"Engagement rate anomalies",
			},
			Actions: []string{
				"Review and update crisis response plan",
				"Monitor situation closely for next 48 hours",
				"Prepare stakeholder communication",
				"Consider proactive engagement strategy",
			},
		}
	default:
		return g.alertReasoning(rc)
	}
}

func (g *implGenerator) alertReasoning(rc ReasoningContext) Reasoning {
	top := rc.Features[0]
	second := ""
	if len(rc.Features) > 1 {
		second = "and " + featureLabel(rc.Features[1].Feature) + " "
	}

	return Reasoning{
		Why: []string{
			fmt.Sprintf("High frequency of negative keywords detected (%s%% contribution)", percent(top.Contribution)),
			fmt.Sprintf("Sentiment score %sdropped below threshold", second),
			fmt.Sprintf("Mention velocity increased %dx above baseline", random.Int(g.src, 2, 5)),
		},
		Watch: []string{
			`Monitor "broken", "terrible", "disappointed" keywords`,
			"Track sentiment trend over next 24 hours",
			"Check if mentions are from credible sources",
			"Observe engagement patterns for viral spread",
		},
		Actions: []string{
			"Prepare response statement addressing key concerns",
			"Engage with top negative mentions to show responsiveness",
			"Monitor competitor mentions for context",
			"Alert PR team for potential escalation",
		},
	}
}

// featureLabel replaces the first underscore with a space: "negative_keywords" -> "negative keywords".
func featureLabel(name string) string {
	return strings.Replace(name, "_", " ", 1)
}

func percent(v float64) string {
	return fmt.Sprintf("%.0f", math.Round(v))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
