package valuation

import "CraneAppraiser/internal/model"

// dealScoreNoAsking is returned when there is no asking price to compare
// against; with no evidence either way the listing is presumed fair.
const dealScoreNoAsking = 85

// dealScore rates how good a buy the unit is at its asking price, from the
// ratio of estimated value to asking price.
func dealScore(estimatedValue, askingPrice float64) int {
	if askingPrice <= 0 {
		return dealScoreNoAsking
	}

	ratio := estimatedValue / askingPrice
	switch {
	case ratio >= 1.3:
		return 100
	case ratio >= 1.15:
		return 90
	case ratio >= 1.05:
		return 80
	case ratio >= 0.95:
		return 70
	case ratio >= 0.9:
		return 55
	case ratio >= 0.8:
		return 40
	default:
		return 20
	}
}

// wearScore estimates remaining condition from age and meter hours:
// 60% age, 40% hours, plus a small bonus for heavy-class units, which tend
// to be maintained to a higher standard.
func wearScore(spec *model.EquipmentSpec, currentYear int) float64 {
	age := currentYear - spec.ModelYear
	if age < 0 {
		age = 0
	}

	ageFactor := 100 - 3*float64(age)
	if ageFactor < 0 {
		ageFactor = 0
	}

	hoursFactor := 80.0
	if spec.OperatingHours > 0 && age > 0 {
		expected := float64(age * expectedAnnualHours)
		ratio := float64(spec.OperatingHours) / expected
		hoursFactor = 100 - (ratio-1)*50
		if hoursFactor < 0 {
			hoursFactor = 0
		}
	}

	var capacityBonus float64
	switch {
	case spec.CapacityTons >= 300:
		capacityBonus = 5
	case spec.CapacityTons >= 150:
		capacityBonus = 3
	}

	score := 0.6*ageFactor + 0.4*hoursFactor + capacityBonus
	return clamp(score, 0, 100)
}
