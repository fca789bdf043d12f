package usecase

import (
	"context"
	"strings"

	"insight-srv/internal/appstate"
	"insight-srv/internal/dashboard"
	"insight-srv/internal/model"
)

// begin resolves brand and registers a new load of page. Any brand counts: a load for
// another brand started later supersedes this one.
func (uc *implUseCase) begin(page appstate.Page, brand string) (dashboard.PageMeta, uint64) {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		brand = uc.state.Snapshot().SelectedBrand
	}
	meta := dashboard.PageMeta{Brand: brand, CompanyID: model.NormalizeCompanyID(brand)}
	return meta, uc.state.BeginLoad(page)
}

// finish marks meta stale when a newer load of page has started.
func (uc *implUseCase) finish(ctx context.Context, page appstate.Page, meta *dashboard.PageMeta, gen uint64) {
	if !uc.state.IsCurrent(page, gen) {
		meta.Stale = true
		uc.l.Debugf(ctx, "dashboard.usecase.finish: %s load %d for %s superseded", page, gen, meta.CompanyID)
	}
}
