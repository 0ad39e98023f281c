package valuation

import "CraneAppraiser/internal/model"

// Standard appraisal ratios. These are fixed industry conventions and must
// not drift: FLV < OLV < FMV < insurance replacement always holds.
const (
	ratioOrderlyLiquidation   = 0.65
	ratioForcedLiquidation    = 0.45
	ratioNetOfExpenses        = 0.85
	ratioInsuranceReplacement = 1.15
)

// valuationTypes derives the six standard values from the final estimate.
func valuationTypes(estimate float64) model.ValuationTypes {
	olv := estimate * ratioOrderlyLiquidation
	flv := estimate * ratioForcedLiquidation
	return model.ValuationTypes{
		FairMarketValue:          estimate,
		OrderlyLiquidation:       olv,
		ForcedLiquidation:        flv,
		NetOrderlyLiquidation:    olv * ratioNetOfExpenses,
		NetForcedLiquidation:     flv * ratioNetOfExpenses,
		InsuranceReplacementCost: estimate * ratioInsuranceReplacement,
	}
}
