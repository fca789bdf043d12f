package xai

// WordScore is the SHAP-like value of a single token.
type WordScore struct {
	Word  string  `json:"word"`
	Value float64 `json:"value"`
	Index int     `json:"index"`
}

// Feature is a named contribution expressed in percentage points.
type Feature struct {
	Feature      string  `json:"feature"`
	Contribution float64 `json:"contribution"`
	Explanation  string  `json:"explanation"`
}

// FeatureContext drives FeatureContributions. Use DefaultFeatureContext for the standard inputs.
type FeatureContext struct {
	Sentiment     string
	MentionCount  int
	NegativeRatio float64
}

// DefaultFeatureContext returns the inputs used when a caller supplies none.
func DefaultFeatureContext() FeatureContext {
	return FeatureContext{Sentiment: "negative", MentionCount: 50, NegativeRatio: 0.6}
}

// ConfidenceLevel buckets a confidence score.
type ConfidenceLevel string

const (
	ConfidenceVeryHigh ConfidenceLevel = "very_high"
	ConfidenceHigh     ConfidenceLevel = "high"
	ConfidenceMedium   ConfidenceLevel = "medium"
	ConfidenceLow      ConfidenceLevel = "low"
)

// ConfidenceContext drives ConfidenceScore.
type ConfidenceContext struct {
	DataPoints  int
	Consistency float64
}

// DefaultConfidenceContext returns the inputs used when a caller supplies none.
func DefaultConfidenceContext() ConfidenceContext {
	return ConfidenceContext{DataPoints: 50, Consistency: 0.8}
}

// Confidence is a score in [50, 95] with its level and labels.
type Confidence struct {
	Score       float64         `json:"score"`
	Level       ConfidenceLevel `json:"level"`
	Explanation string          `json:"explanation"`
	DataQuality string          `json:"dataQuality"`
}

// ReasoningKind selects the reasoning templates.
type ReasoningKind string

const (
	KindAlert     ReasoningKind = "alert"
	KindSentiment ReasoningKind = "sentiment"
	KindRisk      ReasoningKind = "risk"
)

// IsValid reports whether k is a known kind.
func (k ReasoningKind) IsValid() bool {
	return k == KindAlert || k == KindSentiment || k == KindRisk
}

// ReasoningContext drives Reasoning. Features are expected ranked, highest first.
type ReasoningContext struct {
	Kind     ReasoningKind
	Severity string
	Features []Feature
}

// Reasoning is the plain-English explanation split into three lists.
type Reasoning struct {
	Why     []string `json:"why"`
	Watch   []string `json:"watch"`
	Actions []string `json:"actions"`
}
