package appstate

import (
	"strings"
	"sync"

	"insight-srv/internal/filter"
	"insight-srv/internal/model"
)

type implStore struct {
	mu          sync.RWMutex
	state       State
	comparison  filter.ComparisonSet
	generations map[Page]uint64
}

func (s *implStore) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *implStore) snapshotLocked() State {
	st := s.state
	st.Comparison = s.comparison.Items()
	return st
}

// update applies fn under the write lock and returns the resulting snapshot.
func (s *implStore) update(fn func(st *State) error) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(&s.state); err != nil {
		return s.snapshotLocked(), err
	}
	return s.snapshotLocked(), nil
}

func (s *implStore) ToggleSidebar() State {
	st, _ := s.update(func(st *State) error {
		st.SidebarCollapsed = !st.SidebarCollapsed
		return nil
	})
	return st
}

func (s *implStore) SelectBrand(brand string) (State, error) {
	brand = strings.TrimSpace(brand)
	return s.update(func(st *State) error {
		if brand == "" {
			return ErrBrandRequired
		}
		st.SelectedBrand = brand
		return nil
	})
}

func (s *implStore) SetAlertCount(count int) (State, error) {
	return s.update(func(st *State) error {
		if count < 0 {
			return ErrInvalidAlertCount
		}
		st.AlertCount = count
		return nil
	})
}

func (s *implStore) ToggleRealTime() State {
	st, _ := s.update(func(st *State) error {
		st.RealTimeEnabled = !st.RealTimeEnabled
		return nil
	})
	return st
}

func (s *implStore) MarkTourSeen() State {
	st, _ := s.update(func(st *State) error {
		st.HasSeenTour = true
		return nil
	})
	return st
}

func (s *implStore) AddToComparison(inf model.Influencer) (State, error) {
	return s.update(func(*State) error {
		if inf.ID == "" {
			return ErrInfluencerRequired
		}
		return s.comparison.Add(inf)
	})
}

func (s *implStore) RemoveFromComparison(id string) (State, error) {
	return s.update(func(*State) error {
		if !s.comparison.Remove(id) {
			return ErrNotInComparison
		}
		return nil
	})
}

func (s *implStore) ClearComparison() State {
	st, _ := s.update(func(*State) error {
		s.comparison.Clear()
		return nil
	})
	return st
}

func (s *implStore) BeginLoad(page Page) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[page]++
	return s.generations[page]
}

func (s *implStore) IsCurrent(page Page, gen uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generations[page] == gen
}

func (s *implStore) SetAlertCountIfCurrent(page Page, gen uint64, count int) (bool, error) {
	if count < 0 {
		return false, ErrInvalidAlertCount
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generations[page] != gen {
		return false, nil
	}
	s.state.AlertCount = count
	return true, nil
}
