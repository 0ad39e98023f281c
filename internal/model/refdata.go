package model

// BuyingTrendSegment aggregates demand intelligence for one market segment
// (e.g. heavy crawlers, mid-size all-terrains).
type BuyingTrendSegment struct {
	Segment       string   `yaml:"segment" json:"segment"`
	GrowthRate    float64  `yaml:"growth_rate" json:"growth_rate"` // percent per year
	DemandDrivers []string `yaml:"demand_drivers" json:"demand_drivers"`
	PriceTrend    string   `yaml:"price_trend" json:"price_trend"`
	MarketSize    string   `yaml:"market_size" json:"market_size"`
}

// BrokerListing is one unit offered on a broker network.
type BrokerListing struct {
	Manufacturer  string   `yaml:"manufacturer" json:"manufacturer"`
	Model         string   `yaml:"model" json:"model"`
	ModelYear     int      `yaml:"model_year" json:"model_year"`
	CapacityTons  float64  `yaml:"capacity_tons" json:"capacity_tons"`
	Price         float64  `yaml:"price" json:"price"`
	Location      string   `yaml:"location" json:"location"`
	Features      []string `yaml:"features" json:"features"`
	SourceNetwork string   `yaml:"source_network" json:"source_network"`
}

// PerformanceProfile holds engineered performance characteristics for one
// manufacturer+model. Score fields are normalized to [0,1].
type PerformanceProfile struct {
	Manufacturer         string  `yaml:"manufacturer" json:"manufacturer"`
	Model                string  `yaml:"model" json:"model"`
	MaxCapacityTons      float64 `yaml:"max_capacity_tons" json:"max_capacity_tons"`
	WorkingRadius40ft    float64 `yaml:"working_radius_40ft" json:"working_radius_40ft"`
	WorkingRadius80ft    float64 `yaml:"working_radius_80ft" json:"working_radius_80ft"`
	MobilityScore        float64 `yaml:"mobility_score" json:"mobility_score"`
	VersatilityScore     float64 `yaml:"versatility_score" json:"versatility_score"`
	BoomUtilizationScore float64 `yaml:"boom_utilization_score" json:"boom_utilization_score"`
}

// Key returns the normalized manufacturer+model lookup key.
func (p *PerformanceProfile) Key() string {
	return NormalizeKey(p.Manufacturer + p.Model)
}

// ManufacturerStats aggregates observed transactions for one manufacturer.
type ManufacturerStats struct {
	AveragePrice     float64 `yaml:"average_price" json:"average_price"`
	PriceLow         float64 `yaml:"price_low" json:"price_low"`
	PriceHigh        float64 `yaml:"price_high" json:"price_high"`
	TransactionCount int     `yaml:"transaction_count" json:"transaction_count"`
}

// MarketIntelligence is the aggregate transaction table: per-manufacturer
// stats keyed by normalized manufacturer name, plus the overall market mean.
type MarketIntelligence struct {
	Manufacturers       map[string]ManufacturerStats `yaml:"manufacturers" json:"manufacturers"`
	OverallAveragePrice float64                      `yaml:"overall_average_price" json:"overall_average_price"`
}
