package valuation

import (
	"fmt"

	"CraneAppraiser/internal/model"
	"CraneAppraiser/internal/refdata"
)

// capacityClass describes a unit's lifting class in plain language.
func capacityClass(tons float64) string {
	switch {
	case tons >= 500:
		return "super-heavy-lift"
	case tons >= 300:
		return "heavy-lift"
	case tons >= 100:
		return "mid-range"
	default:
		return "light"
	}
}

var regionNarratives = map[Region]string{
	RegionGulfCoast: "Gulf-coast energy and petrochemical work keeps regional demand well above the national average.",
	RegionWestCoast: "West-coast infrastructure and port activity supports a sustained regional premium.",
	RegionNortheast: "Dense northeastern urban construction supports a modest regional premium.",
	RegionSoutheast: "Southeastern commercial construction keeps demand slightly above average.",
	RegionMidwest:   "Midwestern demand tracks the national average.",
	RegionMountain:  "Mountain-region demand runs slightly below the national average.",
}

// marketInsights builds the narrative summary attached to each appraisal.
// Purely templated from category, capacity, region, and whatever reference
// data is present, so output is deterministic for a given snapshot.
func marketInsights(spec *model.EquipmentSpec, snap *refdata.Snapshot) []string {
	insights := []string{
		fmt.Sprintf("%s is a %s %s unit at %.0f tons.",
			spec.Model, capacityClass(spec.CapacityTons), categoryLabel(spec.Category), spec.CapacityTons),
	}

	if seg, ok := snap.TrendSegments[classifySegment(spec.Category, spec.CapacityTons)]; ok {
		line := fmt.Sprintf("Its market segment is growing %.1f%% annually", seg.GrowthRate)
		if len(seg.DemandDrivers) > 0 {
			line += fmt.Sprintf(", driven by %s", seg.DemandDrivers[0])
		}
		insights = append(insights, line+".")
	}

	region := classifyRegion(spec.Location)
	if n, ok := regionNarratives[region]; ok {
		insights = append(insights, n)
	}

	if stats, ok := snap.MarketIntel.Manufacturers[model.NormalizeKey(spec.Manufacturer)]; ok && stats.TransactionCount > 0 {
		insights = append(insights, fmt.Sprintf(
			"%s units traded %d times recently at an average of $%.0f.",
			spec.Manufacturer, stats.TransactionCount, stats.AveragePrice))
	}

	return insights
}

func categoryLabel(c model.CraneCategory) string {
	switch c {
	case model.AllTerrain:
		return "all-terrain"
	case model.Crawler:
		return "crawler"
	case model.Tower:
		return "tower"
	case model.RoughTerrain:
		return "rough-terrain"
	case model.CarryDeck:
		return "carry-deck"
	}
	return "crane"
}
