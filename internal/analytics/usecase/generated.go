package usecase

import (
	"context"
	"strings"

	"insight-srv/internal/analytics"
	"insight-srv/internal/model"
)

// ListSpikeDetections has no backend counterpart and is always generated.
func (uc *implUseCase) ListSpikeDetections(ctx context.Context, companyID string) ([]model.SpikeDetection, error) {
	if _, err := normalizeCompany(companyID); err != nil {
		return nil, err
	}
	return uc.mock.SpikeDetections(), nil
}

// GetXAIExplanation has no backend counterpart and is always generated.
func (uc *implUseCase) GetXAIExplanation(ctx context.Context, alertID string) (model.XAIExplanation, error) {
	alertID = strings.TrimSpace(alertID)
	if alertID == "" {
		return model.XAIExplanation{}, analytics.ErrAlertIDRequired
	}
	if uc.explainer != nil {
		return uc.explainer.Explanation(alertID), nil
	}
	return uc.mock.XAIExplanation(alertID), nil
}

func (uc *implUseCase) CheckHealth(ctx context.Context) bool {
	if err := uc.backend.Health(ctx); err != nil {
		uc.l.Warnf(ctx, "analytics.usecase.CheckHealth: %v", err)
		return false
	}
	return true
}
