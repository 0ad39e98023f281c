package valuation

import (
	"fmt"
	"math"

	"CraneAppraiser/internal/model"
	"CraneAppraiser/internal/refdata"
)

// Adjustment is one bounded fractional contribution to the final estimate.
// The five fractions are summed and applied to the base value once, not
// compounded, so each contributor stays independently auditable.
type Adjustment struct {
	Name       string
	Fraction   float64
	Commentary string
}

const (
	brokerClamp = 0.10
	intelClamp  = 0.05
)

// classifySegment maps category + capacity to a buying-trend segment key.
func classifySegment(category model.CraneCategory, capacityTons float64) string {
	switch category {
	case model.Crawler:
		if capacityTons >= 300 {
			return "crawler-heavy"
		}
		return "crawler-mid"
	case model.AllTerrain:
		switch {
		case capacityTons > 120:
			return "all-terrain-heavy"
		case capacityTons >= 70:
			return "all-terrain-mid"
		default:
			return "all-terrain-compact"
		}
	case model.Tower:
		return "tower"
	case model.RoughTerrain:
		return "rough-terrain"
	case model.CarryDeck:
		return "carry-deck"
	}
	return ""
}

// trendAdjustment reads the unit's market segment and converts its growth
// rate into a stepped premium or discount.
func trendAdjustment(spec *model.EquipmentSpec, snap *refdata.Snapshot) Adjustment {
	adj := Adjustment{Name: model.BreakdownTrend}

	segKey := classifySegment(spec.Category, spec.CapacityTons)
	seg, ok := snap.TrendSegments[segKey]
	if !ok {
		adj.Commentary = "no trend segment data"
		return adj
	}

	switch {
	case seg.GrowthRate > 15:
		adj.Fraction = 0.10
	case seg.GrowthRate > 10:
		adj.Fraction = 0.05
	case seg.GrowthRate > 5:
		adj.Fraction = 0.02
	case seg.GrowthRate < -5:
		adj.Fraction = -0.05
	}
	adj.Commentary = fmt.Sprintf("segment %s growing %.1f%%/yr", segKey, seg.GrowthRate)
	return adj
}

// brokerAdjustment compares the mean asking price of loosely matching broker
// listings against a rough independent estimate (70% of replacement cost)
// and clamps the resulting premium to ±10%.
func brokerAdjustment(spec *model.EquipmentSpec, snap *refdata.Snapshot) Adjustment {
	adj := Adjustment{Name: model.BreakdownBroker}

	mfrKey := model.NormalizeKey(spec.Manufacturer)
	modelKey := model.NormalizeKey(spec.Model)

	var sum float64
	var n int
	for i := range snap.Listings {
		l := &snap.Listings[i]
		if l.Price <= 0 {
			continue
		}
		capMatch := spec.CapacityTons > 0 &&
			math.Abs(l.CapacityTons-spec.CapacityTons)/spec.CapacityTons <= 0.20
		if model.NormalizeKey(l.Manufacturer) == mfrKey ||
			model.NormalizeKey(l.Model) == modelKey ||
			capMatch {
			sum += l.Price
			n++
		}
	}
	if n == 0 {
		adj.Commentary = "no matching broker listings"
		return adj
	}

	mean := sum / float64(n)
	independent := replacementCost(spec) * 0.7
	if independent <= 0 {
		adj.Commentary = "no independent estimate"
		return adj
	}

	adj.Fraction = clamp((mean-independent)/independent, -brokerClamp, brokerClamp)
	adj.Commentary = fmt.Sprintf("%d listings, mean $%.0f", n, mean)
	return adj
}

// performanceAdjustment rewards units whose engineered performance profile
// outclasses the field: 30% mobility, 30% versatility, 40% boom utilization.
func performanceAdjustment(spec *model.EquipmentSpec, snap *refdata.Snapshot) Adjustment {
	adj := Adjustment{Name: model.BreakdownPerformance}

	p := snap.FindProfile(spec.Manufacturer, spec.Model)
	if p == nil {
		adj.Commentary = "no performance profile"
		return adj
	}

	score := 0.3*p.MobilityScore + 0.3*p.VersatilityScore + 0.4*p.BoomUtilizationScore
	switch {
	case score > 0.85:
		adj.Fraction = 0.08
	case score > 0.75:
		adj.Fraction = 0.04
	case score < 0.60:
		adj.Fraction = -0.04
	}
	adj.Commentary = fmt.Sprintf("performance score %.2f", score)
	return adj
}

// regionalAdjustment converts the location's demand multiplier into a
// fraction: a 1.20 multiplier becomes +0.20.
func regionalAdjustment(spec *model.EquipmentSpec) Adjustment {
	region, mult := regionalMultiplier(spec.Location)
	return Adjustment{
		Name:       model.BreakdownRegional,
		Fraction:   mult - 1,
		Commentary: fmt.Sprintf("region %s ×%.2f", region, mult),
	}
}

// intelAdjustment compares the manufacturer's aggregate transaction average
// to the overall market average, clamped to ±5%.
func intelAdjustment(spec *model.EquipmentSpec, snap *refdata.Snapshot) Adjustment {
	adj := Adjustment{Name: model.BreakdownMarketIntel}

	stats, ok := snap.MarketIntel.Manufacturers[model.NormalizeKey(spec.Manufacturer)]
	if !ok || stats.AveragePrice <= 0 || snap.MarketIntel.OverallAveragePrice <= 0 {
		adj.Commentary = "no market intelligence"
		return adj
	}

	premium := (stats.AveragePrice - snap.MarketIntel.OverallAveragePrice) / snap.MarketIntel.OverallAveragePrice
	adj.Fraction = clamp(premium, -intelClamp, intelClamp)
	adj.Commentary = fmt.Sprintf("%d transactions, brand avg $%.0f", stats.TransactionCount, stats.AveragePrice)
	return adj
}

// adjustments runs the full pipeline and returns the five fractions in a
// fixed order: trend, broker, performance, regional, market intelligence.
func adjustments(spec *model.EquipmentSpec, snap *refdata.Snapshot) []Adjustment {
	return []Adjustment{
		trendAdjustment(spec, snap),
		brokerAdjustment(spec, snap),
		performanceAdjustment(spec, snap),
		regionalAdjustment(spec),
		intelAdjustment(spec, snap),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
