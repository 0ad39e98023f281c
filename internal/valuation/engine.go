package valuation

import (
	"time"

	"CraneAppraiser/internal/model"
	"CraneAppraiser/internal/refdata"
)

// Engine computes appraisals. It holds no mutable state of its own: the
// reference snapshot is passed per call, so the same Engine can serve any
// number of concurrent requests.
type Engine struct {
	// Now supplies the clock used to derive unit age. Overridable in tests.
	Now func() time.Time
}

// NewEngine creates an Engine on the wall clock.
func NewEngine() *Engine {
	return &Engine{Now: time.Now}
}

// Appraise runs the full valuation: depreciation base, the five-signal
// adjustment pipeline, then confidence, comparables, valuation types, and
// the deal/wear scores. It never fails: missing reference data degrades
// each signal to neutral and lowers the confidence score instead.
func (e *Engine) Appraise(spec *model.EquipmentSpec, snap *refdata.Snapshot) *model.ValuationResult {
	if snap == nil {
		snap = refdata.Empty()
	}
	currentYear := e.Now().Year()

	// Step a: depreciation model
	base, replacement, hoursAdj := baseValue(spec, currentYear)

	// Step b: adjustment pipeline; fractions are summed and applied once
	adjs := adjustments(spec, snap)
	var totalAdj float64
	for _, a := range adjs {
		totalAdj += a.Fraction
	}
	final := base * (1 + totalAdj)

	// Step c: breakdown with every named contributor
	breakdown := map[string]float64{
		model.BreakdownReplacementCost: replacement,
		model.BreakdownBaseValue:       base,
		model.BreakdownHours:           hoursAdj,
		model.BreakdownFinalValue:      final,
	}
	for _, a := range adjs {
		breakdown[a.Name] = a.Fraction
	}

	return &model.ValuationResult{
		EstimatedValue:  final,
		ConfidenceScore: confidenceScore(spec, snap),
		Breakdown:       breakdown,
		Types:           valuationTypes(final),
		Comparables:     findComparables(spec, snap),
		MarketInsights:  marketInsights(spec, snap),
		DealScore:       dealScore(final, spec.AskingPrice),
		WearScore:       wearScore(spec, currentYear),
	}
}
