package refdata

import (
	"log"
	"time"

	"CraneAppraiser/internal/model"
)

// TrendSource supplies buying-trend segments.
type TrendSource interface {
	FetchTrendSegments() ([]model.BuyingTrendSegment, error)
	Name() string
}

// ListingsSource supplies broker-network listings.
type ListingsSource interface {
	FetchListings() ([]model.BrokerListing, error)
	Name() string
}

// ProfileSource supplies performance profiles.
type ProfileSource interface {
	FetchProfiles() ([]model.PerformanceProfile, error)
	Name() string
}

// IntelSource supplies aggregate market intelligence.
type IntelSource interface {
	FetchIntel() (model.MarketIntelligence, error)
	Name() string
}

// Loader builds snapshots from up to four sources. A nil or failing source
// leaves its table empty with a warning; Load itself never fails, so a
// valuation service always comes up even when reference feeds are down.
type Loader struct {
	Trend       TrendSource
	Listings    ListingsSource
	Performance ProfileSource
	Intel       IntelSource

	// CachePath, when set, persists the last good snapshot to disk and
	// falls back to it when every source fails.
	CachePath string
}

// Load fetches all tables and assembles an immutable snapshot.
func (l *Loader) Load() *Snapshot {
	snap := Empty()
	snap.BuiltAt = time.Now()

	if l.Trend != nil {
		segs, err := l.Trend.FetchTrendSegments()
		if err != nil {
			log.Printf("[WARN] trend source %s failed: %v, table left empty", l.Trend.Name(), err)
		} else {
			for _, s := range segs {
				snap.TrendSegments[s.Segment] = s
			}
			snap.TrendLoaded = true
		}
	}

	if l.Listings != nil {
		listings, err := l.Listings.FetchListings()
		if err != nil {
			log.Printf("[WARN] listings source %s failed: %v, table left empty", l.Listings.Name(), err)
		} else {
			snap.Listings = listings
			snap.ListingsLoaded = true
		}
	}

	if l.Performance != nil {
		profiles, err := l.Performance.FetchProfiles()
		if err != nil {
			log.Printf("[WARN] performance source %s failed: %v, table left empty", l.Performance.Name(), err)
		} else {
			snap.Profiles = profiles
			snap.PerformanceLoaded = true
		}
	}

	if l.Intel != nil {
		intel, err := l.Intel.FetchIntel()
		if err != nil {
			log.Printf("[WARN] intel source %s failed: %v, table left empty", l.Intel.Name(), err)
		} else {
			// Normalize manufacturer keys once at the boundary so the
			// engine only ever does exact lookups.
			normalized := model.MarketIntelligence{
				Manufacturers:       make(map[string]model.ManufacturerStats, len(intel.Manufacturers)),
				OverallAveragePrice: intel.OverallAveragePrice,
			}
			for name, stats := range intel.Manufacturers {
				normalized.Manufacturers[model.NormalizeKey(name)] = stats
			}
			snap.MarketIntel = normalized
			snap.IntelLoaded = true
		}
	}

	if l.CachePath != "" {
		if snap.TablesLoaded() == 0 {
			if cached, err := loadCache(l.CachePath); err == nil {
				log.Printf("[WARN] all reference sources failed, using cached snapshot from %s", cached.BuiltAt.Format(time.RFC3339))
				return cached
			}
		} else if err := saveCache(l.CachePath, snap); err != nil {
			log.Printf("[WARN] cache snapshot: %v", err)
		}
	}

	log.Printf("[INFO] reference snapshot built: %d/4 tables, %d listings, %d profiles, %d segments",
		snap.TablesLoaded(), len(snap.Listings), len(snap.Profiles), len(snap.TrendSegments))
	return snap
}
