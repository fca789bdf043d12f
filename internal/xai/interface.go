package xai

import (
	"insight-srv/internal/model"
	"insight-srv/pkg/random"
)

// Generator synthesizes explainability artifacts. None of the values come from a model.
type Generator interface {
	SHAPValues(text string) []WordScore
	FeatureContributions(fc FeatureContext) []Feature
	ConfidenceScore(cc ConfidenceContext) Confidence
	Reasoning(rc ReasoningContext) Reasoning
	Explanation(alertID string) model.XAIExplanation
}

// New creates a Generator drawing jitter from src.
func New(src random.Source) Generator {
	return &implGenerator{src: src}
}

type implGenerator struct {
	src random.Source
}
