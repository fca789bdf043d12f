package http

import (
	"insight-srv/internal/model"
	"insight-srv/internal/xai"
)

// =====================================================
// Request DTOs
// =====================================================

type mentionsReq struct {
	Source string `form:"source"`
	Limit  int    `form:"limit"`
}

type shapReq struct {
	Text string `json:"text" binding:"required"`
}

// Numeric fields are pointers so an explicit 0 is kept and only absent fields take defaults.
type featuresReq struct {
	Sentiment     string   `json:"sentiment"`
	MentionCount  *int     `json:"mentionCount" binding:"omitempty,min=0"`
	NegativeRatio *float64 `json:"negativeRatio" binding:"omitempty,min=0,max=1"`
}

func (r featuresReq) toContext() xai.FeatureContext {
	fc := xai.DefaultFeatureContext()
	if r.Sentiment != "" {
		fc.Sentiment = r.Sentiment
	}
	if r.MentionCount != nil {
		fc.MentionCount = *r.MentionCount
	}
	if r.NegativeRatio != nil {
		fc.NegativeRatio = *r.NegativeRatio
	}
	return fc
}

type confidenceReq struct {
	DataPoints  *int     `json:"dataPoints" binding:"omitempty,min=0"`
	Consistency *float64 `json:"consistency" binding:"omitempty,min=0,max=1"`
}

func (r confidenceReq) toContext() xai.ConfidenceContext {
	cc := xai.DefaultConfidenceContext()
	if r.DataPoints != nil {
		cc.DataPoints = *r.DataPoints
	}
	if r.Consistency != nil {
		cc.Consistency = *r.Consistency
	}
	return cc
}

type reasoningReq struct {
	Kind     string        `json:"kind"`
	Severity string        `json:"severity"`
	Features []xai.Feature `json:"features"`
}

func (r reasoningReq) toContext() xai.ReasoningContext {
	kind := xai.ReasoningKind(r.Kind)
	if kind == "" {
		kind = xai.KindAlert
	}
	return xai.ReasoningContext{Kind: kind, Severity: r.Severity, Features: r.Features}
}

// =====================================================
// Response DTOs
// =====================================================

type listResp[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func newListResp[T any](items []T) listResp[T] {
	if items == nil {
		items = []T{}
	}
	return listResp[T]{Items: items, Total: len(items)}
}

type companiesResp = listResp[model.Company]
