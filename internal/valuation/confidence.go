package valuation

import (
	"CraneAppraiser/internal/model"
	"CraneAppraiser/internal/refdata"
)

const (
	confidenceBase       = 50
	confidencePerTable   = 8
	confidencePerField   = 4
	confidenceScoreFloor = 0
	confidenceScoreCeil  = 100
)

// confidenceScore measures how much data backed the appraisal: each loaded
// reference table and each populated request field earns a fixed bonus on
// top of the base.
func confidenceScore(spec *model.EquipmentSpec, snap *refdata.Snapshot) int {
	score := confidenceBase

	score += snap.TablesLoaded() * confidencePerTable

	if spec.ModelYear > 0 {
		score += confidencePerField
	}
	if spec.OperatingHours > 0 {
		score += confidencePerField
	}
	if spec.CapacityTons > 0 {
		score += confidencePerField
	}
	if spec.Manufacturer != "" {
		score += confidencePerField
	}

	if score < confidenceScoreFloor {
		return confidenceScoreFloor
	}
	if score > confidenceScoreCeil {
		return confidenceScoreCeil
	}
	return score
}
