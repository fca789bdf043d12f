package filter

import "insight-srv/internal/model"

const MaxComparison = 3

// ComparisonSet holds up to MaxComparison influencers in insertion order.
// It is not safe for concurrent use.
type ComparisonSet struct {
	items []model.Influencer
}

// Add appends inf. Adding an id already present is a no-op.
func (s *ComparisonSet) Add(inf model.Influencer) error {
	if s.Contains(inf.ID) {
		return nil
	}
	if len(s.items) >= MaxComparison {
		return ErrComparisonFull
	}
	s.items = append(s.items, inf)
	return nil
}

// Remove drops the influencer with id and reports whether it was present.
func (s *ComparisonSet) Remove(id string) bool {
	for i, inf := range s.items {
		if inf.ID == id {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

func (s *ComparisonSet) Clear() {
	s.items = nil
}

func (s *ComparisonSet) Contains(id string) bool {
	for _, inf := range s.items {
		if inf.ID == id {
			return true
		}
	}
	return false
}

func (s *ComparisonSet) Len() int {
	return len(s.items)
}

// Items returns a copy of the set.
func (s *ComparisonSet) Items() []model.Influencer {
	out := make([]model.Influencer, len(s.items))
	copy(out, s.items)
	return out
}
