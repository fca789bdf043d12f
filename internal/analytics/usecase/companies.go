package usecase

import (
	"context"

	"insight-srv/internal/model"
)

// ListCompanies returns the backend's companies, or the default brands when the backend fails.
func (uc *implUseCase) ListCompanies(ctx context.Context) ([]model.Company, error) {
	if uc.cfg.UseMock {
		return uc.mock.Companies(), nil
	}

	raw, err := uc.backend.GetCompanies(ctx)
	if err != nil {
		uc.fallback(ctx, "ListCompanies", err)
		return model.DefaultCompanies(), nil
	}

	companies := make([]model.Company, 0, len(raw))
	for _, c := range raw {
		if c.ID == "" {
			continue
		}
		name := c.DisplayName
		if name == "" {
			name = c.ID
		}
		companies = append(companies, model.Company{ID: c.ID, DisplayName: name})
	}
	return companies, nil
}
