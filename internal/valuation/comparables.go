package valuation

import (
	"math"
	"sort"

	"CraneAppraiser/internal/model"
	"CraneAppraiser/internal/refdata"
)

const (
	similarityThreshold = 0.6
	maxComparables      = 10

	weightManufacturer = 0.30
	weightModel        = 0.20
	weightCapacity     = 0.30
	weightYear         = 0.20

	// Capacity contributions fall linearly to zero past a 20% relative
	// difference; years past a 5-year absolute difference.
	capacityTolerance = 0.20
	yearTolerance     = 5.0
)

// similarity scores one listing against the request, in [0,1].
func similarity(spec *model.EquipmentSpec, l *model.BrokerListing) float64 {
	var score float64

	if model.NormalizeKey(l.Manufacturer) == model.NormalizeKey(spec.Manufacturer) {
		score += weightManufacturer
	}
	if model.NormalizeKey(l.Model) == model.NormalizeKey(spec.Model) {
		score += weightModel
	}

	if spec.CapacityTons > 0 {
		relDiff := math.Abs(l.CapacityTons-spec.CapacityTons) / spec.CapacityTons
		if relDiff < capacityTolerance {
			score += weightCapacity * (1 - relDiff/capacityTolerance)
		}
	}

	yearDiff := math.Abs(float64(l.ModelYear - spec.ModelYear))
	if yearDiff < yearTolerance {
		score += weightYear * (1 - yearDiff/yearTolerance)
	}

	return score
}

// findComparables ranks every listing in the snapshot by similarity and
// returns the top matches above the threshold, annotated with their source
// network and a 0-100 similarity score.
func findComparables(spec *model.EquipmentSpec, snap *refdata.Snapshot) []model.Comparable {
	type scored struct {
		listing *model.BrokerListing
		score   float64
	}

	var candidates []scored
	for i := range snap.Listings {
		l := &snap.Listings[i]
		if s := similarity(spec, l); s > similarityThreshold {
			candidates = append(candidates, scored{listing: l, score: s})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > maxComparables {
		candidates = candidates[:maxComparables]
	}

	comps := make([]model.Comparable, 0, len(candidates))
	for _, c := range candidates {
		comps = append(comps, model.Comparable{
			Manufacturer:    c.listing.Manufacturer,
			Model:           c.listing.Model,
			ModelYear:       c.listing.ModelYear,
			CapacityTons:    c.listing.CapacityTons,
			Price:           c.listing.Price,
			Location:        c.listing.Location,
			SimilarityScore: c.score * 100,
			SourceNetwork:   c.listing.SourceNetwork,
		})
	}
	return comps
}
