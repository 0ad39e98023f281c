package refdata

import (
	"strings"
	"sync/atomic"
	"time"

	"CraneAppraiser/internal/model"
)

// Snapshot bundles the four reference tables the valuation engine reads.
// A Snapshot is built once by the loader and never mutated afterwards, so
// any number of concurrent appraisals can share it without locking.
type Snapshot struct {
	TrendSegments map[string]model.BuyingTrendSegment
	Listings      []model.BrokerListing
	Profiles      []model.PerformanceProfile
	MarketIntel   model.MarketIntelligence

	// Per-table load flags. A table whose source failed stays empty and
	// unflagged; the confidence scorer absorbs the gap.
	TrendLoaded       bool
	ListingsLoaded    bool
	PerformanceLoaded bool
	IntelLoaded       bool

	BuiltAt time.Time
}

// Empty returns a snapshot with no tables loaded. Appraisals against it
// still succeed, at minimum confidence.
func Empty() *Snapshot {
	return &Snapshot{
		TrendSegments: map[string]model.BuyingTrendSegment{},
		MarketIntel:   model.MarketIntelligence{Manufacturers: map[string]model.ManufacturerStats{}},
	}
}

// TablesLoaded counts how many of the four tables loaded successfully.
func (s *Snapshot) TablesLoaded() int {
	n := 0
	for _, ok := range []bool{s.TrendLoaded, s.ListingsLoaded, s.PerformanceLoaded, s.IntelLoaded} {
		if ok {
			n++
		}
	}
	return n
}

// FindProfile looks up a performance profile by normalized manufacturer+model
// key. If no exact key matches, it falls back to containment in either
// direction, longest match first, so "LTM 1300-6.2" still finds "LTM1300".
func (s *Snapshot) FindProfile(manufacturer, mdl string) *model.PerformanceProfile {
	key := model.NormalizeKey(manufacturer + mdl)
	if key == "" {
		return nil
	}
	var best *model.PerformanceProfile
	bestLen := 0
	for i := range s.Profiles {
		p := &s.Profiles[i]
		pk := p.Key()
		if pk == key {
			return p
		}
		if len(pk) > 0 && (strings.Contains(key, pk) || strings.Contains(pk, key)) {
			if len(pk) > bestLen {
				best = p
				bestLen = len(pk)
			}
		}
	}
	return best
}

// Store holds the active snapshot behind an atomic pointer. Refreshes build
// a complete replacement snapshot and swap it in; readers never observe a
// partially updated table.
type Store struct {
	active atomic.Pointer[Snapshot]
}

// NewStore creates a Store seeded with the given snapshot.
func NewStore(s *Snapshot) *Store {
	st := &Store{}
	if s == nil {
		s = Empty()
	}
	st.active.Store(s)
	return st
}

// Active returns the current snapshot.
func (st *Store) Active() *Snapshot {
	return st.active.Load()
}

// Swap installs a freshly built snapshot.
func (st *Store) Swap(s *Snapshot) {
	if s == nil {
		return
	}
	st.active.Store(s)
}
