package valuation

import (
	"math"

	"CraneAppraiser/internal/model"
)

// expectedAnnualHours is the industry-average utilization for a working crane.
const expectedAnnualHours = 800

// perTonBaseRates is the new-build replacement cost in $/ton by category.
var perTonBaseRates = map[model.CraneCategory]float64{
	model.Crawler:      15000,
	model.AllTerrain:   12000,
	model.Tower:        9500,
	model.RoughTerrain: 8000,
	model.CarryDeck:    6500,
}

// defaultPerTonRate is used when the category is not in the table.
const defaultPerTonRate = 12000

// manufacturerMultipliers adjusts replacement cost for brand position.
// Premium European brands hold value above 1.0, budget brands below.
var manufacturerMultipliers = map[string]float64{
	"liebherr":  1.15,
	"demag":     1.10,
	"manitowoc": 1.08,
	"tadano":    1.05,
	"grove":     1.02,
	"linkbelt":  0.98,
	"terex":     0.95,
	"sany":      0.85,
	"zoomlion":  0.85,
	"xcmg":      0.82,
}

// depreciationCurve holds the annual decay rate for the four age bands:
// [0-3], [4-7], [8-15], [15+] years.
type depreciationCurve [4]float64

// depreciationCurves by category. Crawlers decay slowest, towers fastest.
var depreciationCurves = map[model.CraneCategory]depreciationCurve{
	model.Crawler:      {0.13, 0.10, 0.08, 0.05},
	model.AllTerrain:   {0.15, 0.12, 0.09, 0.06},
	model.RoughTerrain: {0.16, 0.13, 0.10, 0.07},
	model.CarryDeck:    {0.17, 0.13, 0.10, 0.07},
	model.Tower:        {0.18, 0.14, 0.11, 0.08},
}

// annualRate picks the decay rate for an age from the category's curve.
// Unknown categories use the all-terrain curve.
func annualRate(category model.CraneCategory, age int) float64 {
	curve, ok := depreciationCurves[category]
	if !ok {
		curve = depreciationCurves[model.AllTerrain]
	}
	switch {
	case age <= 3:
		return curve[0]
	case age <= 7:
		return curve[1]
	case age <= 15:
		return curve[2]
	default:
		return curve[3]
	}
}

// replacementCost estimates what the unit would cost new today.
func replacementCost(spec *model.EquipmentSpec) float64 {
	rate, ok := perTonBaseRates[spec.Category]
	if !ok {
		rate = defaultPerTonRate
	}

	mult := 1.0
	if m, ok := manufacturerMultipliers[model.NormalizeKey(spec.Manufacturer)]; ok {
		mult = m
	}

	// Very large units carry disproportionate engineering cost; very small
	// ones are commodity builds. Boundaries: exactly 300t and 500t fall in
	// the lower bracket, exactly 50t gets no discount.
	scale := 1.0
	switch {
	case spec.CapacityTons > 500:
		scale = 1.2
	case spec.CapacityTons > 300:
		scale = 1.1
	case spec.CapacityTons < 50:
		scale = 0.9
	}

	return spec.CapacityTons * rate * mult * scale
}

// hoursAdjustment returns the fractional correction for meter hours relative
// to the expected hours for the unit's age. Unknown hours (or a brand-new
// unit) contribute nothing.
func hoursAdjustment(age, operatingHours int) float64 {
	if operatingHours <= 0 || age <= 0 {
		return 0
	}
	expected := float64(age * expectedAnnualHours)
	ratio := float64(operatingHours) / expected
	switch {
	case ratio < 0.5:
		return 0.15
	case ratio < 0.8:
		return 0.05
	case ratio < 1.2:
		return 0
	case ratio < 1.5:
		return -0.05
	default:
		return -0.15
	}
}

// baseValue runs the full depreciation model: replacement cost, compound
// age decay, then the hours correction.
func baseValue(spec *model.EquipmentSpec, currentYear int) (base, replacement, hoursAdj float64) {
	replacement = replacementCost(spec)

	age := currentYear - spec.ModelYear
	if age < 0 {
		age = 0
	}

	rate := annualRate(spec.Category, age)
	depreciated := replacement * math.Pow(1-rate, float64(age))

	hoursAdj = hoursAdjustment(age, spec.OperatingHours)
	return depreciated * (1 + hoursAdj), replacement, hoursAdj
}
