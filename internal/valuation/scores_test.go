package valuation

import (
	"math"
	"testing"

	"CraneAppraiser/internal/model"
)

func TestDealScore_NoAskingPrice(t *testing.T) {
	if got := dealScore(2e6, 0); got != 85 {
		t.Errorf("no asking price should score 85, got %d", got)
	}
	if got := dealScore(2e6, -5); got != 85 {
		t.Errorf("negative asking price should score 85, got %d", got)
	}
}

func TestDealScore_RatioBuckets(t *testing.T) {
	tests := []struct {
		estimated, asking float64
		want              int
	}{
		{1300000, 1000000, 100},
		{1150000, 1000000, 90},
		{1050000, 1000000, 80},
		{950000, 1000000, 70},
		{900000, 1000000, 55},
		{800000, 1000000, 40},
		{700000, 1000000, 20},
	}
	for _, tt := range tests {
		if got := dealScore(tt.estimated, tt.asking); got != tt.want {
			t.Errorf("ratio %.2f: expected %d, got %d", tt.estimated/tt.asking, tt.want, got)
		}
	}
}

func TestWearScore_Components(t *testing.T) {
	// 5 years old, 4000 hours (exactly expected), 300t:
	// 0.6*85 + 0.4*100 + 5 = 96
	spec := &model.EquipmentSpec{
		ModelYear:      2020,
		OperatingHours: 4000,
		CapacityTons:   300,
		Category:       model.Crawler,
	}
	if got := wearScore(spec, 2025); math.Abs(got-96) > 1e-9 {
		t.Errorf("expected 96, got %.1f", got)
	}

	// Unknown hours use the fixed 80 factor: 0.6*85 + 0.4*80 + 3 = 86
	spec2 := &model.EquipmentSpec{ModelYear: 2020, CapacityTons: 200}
	if got := wearScore(spec2, 2025); math.Abs(got-86) > 1e-9 {
		t.Errorf("expected 86, got %.1f", got)
	}
}

func TestWearScore_Clamped(t *testing.T) {
	// A 50-year-old unit run far past expected hours must floor at 0, not
	// go negative.
	old := &model.EquipmentSpec{ModelYear: 1975, OperatingHours: 500000, CapacityTons: 40}
	if got := wearScore(old, 2025); got < 0 || got > 100 {
		t.Errorf("wear score out of range: %.1f", got)
	}

	// A nearly-new lightly-run heavy unit must cap at 100.
	fresh := &model.EquipmentSpec{ModelYear: 2024, OperatingHours: 100, CapacityTons: 500}
	got := wearScore(fresh, 2025)
	if got < 0 || got > 100 {
		t.Errorf("wear score out of range: %.1f", got)
	}
}
