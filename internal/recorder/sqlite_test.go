package recorder

import (
	"path/filepath"
	"testing"

	"CraneAppraiser/internal/model"
)

func TestSQLiteRecorder_RoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "appraiser.db")
	r, err := NewSQLiteRecorder(dbPath)
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer r.Close()

	spec := &model.EquipmentSpec{
		Manufacturer: "Liebherr", Model: "LR 1300", ModelYear: 2020,
		CapacityTons: 300, Category: model.Crawler,
		OperatingHours: 4000, Location: "Houston, TX", AskingPrice: 2e6,
	}
	res := &model.ValuationResult{
		EstimatedValue:  3.67e6,
		ConfidenceScore: 66,
		DealScore:       100,
		WearScore:       96,
		Breakdown: map[string]float64{
			model.BreakdownReplacementCost: 5.175e6,
			model.BreakdownBaseValue:       3.06e6,
			model.BreakdownRegional:        0.20,
		},
	}
	if err := r.RecordAppraisal(&AppraisalRecord{RequestID: "req-1", Spec: spec, Result: res}); err != nil {
		t.Fatalf("record appraisal: %v", err)
	}
	if err := r.RecordRefresh(&RefreshEvent{TablesLoaded: 3, ListingCount: 120}); err != nil {
		t.Fatalf("record refresh: %v", err)
	}

	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM appraisals WHERE request_id = 'req-1'`).Scan(&count); err != nil {
		t.Fatalf("query: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 appraisal row, got %d", count)
	}

	var estimated float64
	var category string
	if err := r.db.QueryRow(`SELECT estimated_value, category FROM appraisals`).Scan(&estimated, &category); err != nil {
		t.Fatalf("query row: %v", err)
	}
	if estimated != 3.67e6 || category != "CRAWLER" {
		t.Errorf("unexpected row: %.0f %s", estimated, category)
	}
}
