package appstate

import (
	"insight-srv/internal/model"
)

// Store is the shared application state. All methods are safe for concurrent use.
type Store interface {
	Snapshot() State

	ToggleSidebar() State
	SelectBrand(brand string) (State, error)
	SetAlertCount(count int) (State, error)
	ToggleRealTime() State
	MarkTourSeen() State

	AddToComparison(inf model.Influencer) (State, error)
	RemoveFromComparison(id string) (State, error)
	ClearComparison() State

	// BeginLoad starts a load of page, whatever brand it is for, and returns its generation.
	// A later BeginLoad for the same page supersedes it.
	BeginLoad(page Page) uint64
	// IsCurrent reports whether gen is still the latest load of page.
	IsCurrent(page Page, gen uint64) bool
	// SetAlertCountIfCurrent sets the alert count only while gen is the latest load of page.
	SetAlertCountIfCurrent(page Page, gen uint64, count int) (bool, error)
}

// New creates a Store holding the default state.
func New(cfg Config) Store {
	if cfg.DefaultBrand == "" {
		cfg.DefaultBrand = DefaultBrand
	}
	return &implStore{
		state: State{
			SelectedBrand:   cfg.DefaultBrand,
			AlertCount:      DefaultAlertCount,
			RealTimeEnabled: true,
		},
		generations: make(map[Page]uint64, len(Pages)),
	}
}
