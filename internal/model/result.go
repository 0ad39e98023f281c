package model

// Breakdown keys used in ValuationResult.Breakdown. Every appraisal carries
// all of them so downstream consumers can audit each contributor separately.
const (
	BreakdownReplacementCost = "replacement_cost"
	BreakdownBaseValue       = "base_value"
	BreakdownHours           = "hours_adjustment"
	BreakdownTrend           = "trend_adjustment"
	BreakdownBroker          = "broker_adjustment"
	BreakdownPerformance     = "performance_adjustment"
	BreakdownRegional        = "regional_adjustment"
	BreakdownMarketIntel     = "market_intelligence_adjustment"
	BreakdownFinalValue      = "final_value"
)

// ValuationTypes holds the six standard appraisal values derived from the
// final estimate via fixed industry ratios.
type ValuationTypes struct {
	FairMarketValue          float64 `json:"fair_market_value"`
	OrderlyLiquidation       float64 `json:"orderly_liquidation_value"`
	ForcedLiquidation        float64 `json:"forced_liquidation_value"`
	NetOrderlyLiquidation    float64 `json:"net_orderly_liquidation_value"`
	NetForcedLiquidation     float64 `json:"net_forced_liquidation_value"`
	InsuranceReplacementCost float64 `json:"insurance_replacement_cost"`
}

// Comparable is one broker listing ranked against the appraised unit.
type Comparable struct {
	Manufacturer    string  `json:"manufacturer"`
	Model           string  `json:"model"`
	ModelYear       int     `json:"model_year"`
	CapacityTons    float64 `json:"capacity_tons"`
	Price           float64 `json:"price"`
	Location        string  `json:"location"`
	SimilarityScore float64 `json:"similarity_score"` // 0~100
	SourceNetwork   string  `json:"source_network"`
}

// ValuationResult is the full output of one appraisal.
type ValuationResult struct {
	EstimatedValue  float64            `json:"estimated_value"`
	ConfidenceScore int                `json:"confidence_score"` // 0~100
	Breakdown       map[string]float64 `json:"valuation_breakdown"`
	Types           ValuationTypes     `json:"valuation_types"`
	Comparables     []Comparable       `json:"comparables"` // at most 10, ranked
	MarketInsights  []string           `json:"market_insights"`
	DealScore       int                `json:"deal_score"` // 0~100
	WearScore       float64            `json:"wear_score"` // 0~100
}
