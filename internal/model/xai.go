package model

// XAIExplanation explains why an alert fired.
type XAIExplanation struct {
	AlertID     string              `json:"alertId"`
	Confidence  float64             `json:"confidence"`
	TopFeatures []FeatureImportance `json:"topFeatures"`
	SHAPValues  []WordImportance    `json:"shapValues"`
	Reasoning   string              `json:"reasoning"`
}

// FeatureImportance is a feature and its contribution in [-1, 1].
type FeatureImportance struct {
	Feature      string  `json:"feature"`
	Contribution float64 `json:"contribution"`
	Explanation  string  `json:"explanation"`
}

// WordImportance is a word and its SHAP-like value.
type WordImportance struct {
	Word  string  `json:"word"`
	Value float64 `json:"value"`
}
