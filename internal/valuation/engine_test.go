package valuation

import (
	"math"
	"reflect"
	"testing"
	"time"

	"CraneAppraiser/internal/model"
	"CraneAppraiser/internal/refdata"
)

func engineAt(year int) *Engine {
	return &Engine{Now: func() time.Time {
		return time.Date(year, 6, 15, 0, 0, 0, 0, time.UTC)
	}}
}

// The reference scenario: a 2020 Liebherr 300t crawler in Houston with 4000
// hours, asking $2M, against an empty snapshot. Every intermediate value is
// pinned.
func TestAppraise_ReferenceScenario(t *testing.T) {
	spec := &model.EquipmentSpec{
		Manufacturer:   "Liebherr",
		Model:          "LR 1300",
		ModelYear:      2020,
		CapacityTons:   300,
		Category:       model.Crawler,
		OperatingHours: 4000,
		Location:       "Houston, TX",
		AskingPrice:    2000000,
	}
	res := engineAt(2025).Appraise(spec, refdata.Empty())

	if got, want := res.Breakdown[model.BreakdownReplacementCost], 5175000.0; math.Abs(got-want) > 1 {
		t.Errorf("replacement cost: expected %.0f, got %.0f", want, got)
	}
	wantBase := 5175000 * math.Pow(0.9, 5)
	if got := res.Breakdown[model.BreakdownBaseValue]; math.Abs(got-wantBase) > 1 {
		t.Errorf("base value: expected %.0f, got %.0f", wantBase, got)
	}
	if got := res.Breakdown[model.BreakdownHours]; got != 0 {
		t.Errorf("hours adjustment: expected 0, got %.3f", got)
	}
	for _, name := range []string{model.BreakdownTrend, model.BreakdownBroker, model.BreakdownPerformance, model.BreakdownMarketIntel} {
		if got := res.Breakdown[name]; got != 0 {
			t.Errorf("%s: expected 0 with empty snapshot, got %.3f", name, got)
		}
	}
	if got := res.Breakdown[model.BreakdownRegional]; math.Abs(got-0.20) > 1e-12 {
		t.Errorf("regional adjustment: expected +0.20, got %.3f", got)
	}

	wantFinal := wantBase * 1.20
	if math.Abs(res.EstimatedValue-wantFinal) > 1 {
		t.Errorf("final estimate: expected %.0f, got %.0f", wantFinal, res.EstimatedValue)
	}
	if res.EstimatedValue < 3600000 || res.EstimatedValue > 3700000 {
		t.Errorf("final estimate outside expected band: %.0f", res.EstimatedValue)
	}
	if res.DealScore != 100 {
		t.Errorf("deal score: expected 100 at ratio 1.84, got %d", res.DealScore)
	}
	if len(res.Comparables) != 0 {
		t.Errorf("expected no comparables from an empty snapshot, got %d", len(res.Comparables))
	}
}

func TestAppraise_ValuationTypeOrdering(t *testing.T) {
	specs := []*model.EquipmentSpec{
		{Manufacturer: "Liebherr", Model: "LTM 1120", ModelYear: 2022, CapacityTons: 120, Category: model.AllTerrain},
		{Manufacturer: "Grove", Model: "GMK4100L", ModelYear: 2015, CapacityTons: 100, Category: model.AllTerrain, OperatingHours: 9000},
		{Manufacturer: "Potain", Model: "MDT 389", ModelYear: 2008, CapacityTons: 16, Category: model.Tower},
		{Manufacturer: "Broderson", Model: "IC-200", ModelYear: 1995, CapacityTons: 15, Category: model.CarryDeck, OperatingHours: 30000},
	}
	e := engineAt(2025)
	for _, spec := range specs {
		ty := e.Appraise(spec, refdata.Empty()).Types
		if !(ty.ForcedLiquidation < ty.OrderlyLiquidation &&
			ty.OrderlyLiquidation < ty.FairMarketValue &&
			ty.FairMarketValue < ty.InsuranceReplacementCost) {
			t.Errorf("%s: ordering FLV < OLV < FMV < IR violated: %+v", spec.Model, ty)
		}
		if ty.NetOrderlyLiquidation != ty.OrderlyLiquidation*0.85 {
			t.Errorf("%s: NetOLV must be exactly 0.85*OLV", spec.Model)
		}
		if ty.NetForcedLiquidation != ty.ForcedLiquidation*0.85 {
			t.Errorf("%s: NetFLV must be exactly 0.85*FLV", spec.Model)
		}
	}
}

func TestAppraise_ScoreRanges(t *testing.T) {
	specs := []*model.EquipmentSpec{
		{Manufacturer: "Liebherr", Model: "LR 11000", ModelYear: 2024, CapacityTons: 1000, Category: model.Crawler},
		{Manufacturer: "", Model: "", ModelYear: 1970, CapacityTons: 5, Category: model.CarryDeck, OperatingHours: 99999, AskingPrice: 1},
		{Manufacturer: "Tadano", Model: "GR-1000XL", ModelYear: 2018, CapacityTons: 100, Category: model.RoughTerrain, AskingPrice: 1e12},
	}
	e := engineAt(2025)
	for _, spec := range specs {
		res := e.Appraise(spec, refdata.Empty())
		if res.ConfidenceScore < 0 || res.ConfidenceScore > 100 {
			t.Errorf("confidence out of range: %d", res.ConfidenceScore)
		}
		if res.DealScore < 0 || res.DealScore > 100 {
			t.Errorf("deal score out of range: %d", res.DealScore)
		}
		if res.WearScore < 0 || res.WearScore > 100 {
			t.Errorf("wear score out of range: %.1f", res.WearScore)
		}
	}
}

func TestAppraise_NoAskingPriceScores85(t *testing.T) {
	spec := &model.EquipmentSpec{
		Manufacturer: "Grove", Model: "GMK5150L", ModelYear: 2021,
		CapacityTons: 150, Category: model.AllTerrain,
	}
	res := engineAt(2025).Appraise(spec, refdata.Empty())
	if res.DealScore != 85 {
		t.Errorf("expected 85 with no asking price, got %d", res.DealScore)
	}
}

func TestAppraise_ConfidenceReflectsDataAvailability(t *testing.T) {
	spec := &model.EquipmentSpec{
		Manufacturer: "Liebherr", Model: "LTM 1090", ModelYear: 2019,
		CapacityTons: 90, Category: model.AllTerrain, OperatingHours: 3000,
	}
	e := engineAt(2025)

	sparse := e.Appraise(spec, refdata.Empty()).ConfidenceScore

	full := refdata.Empty()
	full.TrendLoaded = true
	full.ListingsLoaded = true
	full.PerformanceLoaded = true
	full.IntelLoaded = true
	rich := e.Appraise(spec, full).ConfidenceScore

	if rich <= sparse {
		t.Errorf("loading all tables should raise confidence: %d vs %d", rich, sparse)
	}
	if sparse != 50+4*4 {
		t.Errorf("expected 66 with no tables and all fields, got %d", sparse)
	}
	if rich != 50+4*8+4*4 {
		t.Errorf("expected 98 with all tables and all fields, got %d", rich)
	}
}

func TestAppraise_Idempotent(t *testing.T) {
	spec := &model.EquipmentSpec{
		Manufacturer: "Demag", Model: "AC 220-5", ModelYear: 2017,
		CapacityTons: 220, Category: model.AllTerrain,
		OperatingHours: 6500, Location: "Miami, FL", AskingPrice: 1250000,
	}
	snap := refdata.Empty()
	snap.TrendLoaded = true
	snap.TrendSegments["all-terrain-heavy"] = model.BuyingTrendSegment{
		Segment: "all-terrain-heavy", GrowthRate: 12, DemandDrivers: []string{"wind energy"},
	}
	snap.ListingsLoaded = true
	snap.Listings = []model.BrokerListing{
		{Manufacturer: "Demag", Model: "AC 220-5", ModelYear: 2016, CapacityTons: 220, Price: 1.1e6, SourceNetwork: "net-a"},
		{Manufacturer: "Demag", Model: "AC 220-5", ModelYear: 2018, CapacityTons: 220, Price: 1.3e6, SourceNetwork: "net-b"},
	}

	e := engineAt(2025)
	first := e.Appraise(spec, snap)
	for i := 0; i < 5; i++ {
		if got := e.Appraise(spec, snap); !reflect.DeepEqual(first, got) {
			t.Fatalf("appraisal not idempotent on call %d", i+2)
		}
	}
}

func TestAppraise_NilSnapshot(t *testing.T) {
	spec := &model.EquipmentSpec{
		Manufacturer: "Grove", Model: "GMK3060", ModelYear: 2020,
		CapacityTons: 60, Category: model.AllTerrain,
	}
	res := engineAt(2025).Appraise(spec, nil)
	if res == nil || res.EstimatedValue <= 0 {
		t.Fatal("nil snapshot must still produce a valuation")
	}
}
