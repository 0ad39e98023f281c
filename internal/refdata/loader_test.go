package refdata

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"CraneAppraiser/internal/model"
)

type stubListings struct {
	listings []model.BrokerListing
	err      error
}

func (s *stubListings) FetchListings() ([]model.BrokerListing, error) { return s.listings, s.err }
func (s *stubListings) Name() string                                  { return "stub" }

type stubIntel struct {
	intel model.MarketIntelligence
	err   error
}

func (s *stubIntel) FetchIntel() (model.MarketIntelligence, error) { return s.intel, s.err }
func (s *stubIntel) Name() string                                  { return "stub" }

func TestLoader_FailedSourceLeavesTableEmpty(t *testing.T) {
	loader := &Loader{
		Listings: &stubListings{err: fmt.Errorf("feed down")},
		Intel: &stubIntel{intel: model.MarketIntelligence{
			Manufacturers:       map[string]model.ManufacturerStats{"Liebherr": {AveragePrice: 2e6, TransactionCount: 4}},
			OverallAveragePrice: 1.5e6,
		}},
	}
	snap := loader.Load()

	if snap.ListingsLoaded {
		t.Error("failed listings source must not flag the table loaded")
	}
	if len(snap.Listings) != 0 {
		t.Errorf("failed source must leave an empty table, got %d listings", len(snap.Listings))
	}
	if !snap.IntelLoaded {
		t.Error("intel table should have loaded")
	}
	if snap.TablesLoaded() != 1 {
		t.Errorf("expected 1 table loaded, got %d", snap.TablesLoaded())
	}
	// Manufacturer keys are normalized at the boundary.
	if _, ok := snap.MarketIntel.Manufacturers["liebherr"]; !ok {
		t.Error("intel manufacturer keys should be normalized")
	}
}

func TestLoader_NilSourcesProduceEmptySnapshot(t *testing.T) {
	snap := (&Loader{}).Load()
	if snap.TablesLoaded() != 0 {
		t.Errorf("expected 0 tables, got %d", snap.TablesLoaded())
	}
	if snap.TrendSegments == nil || snap.MarketIntel.Manufacturers == nil {
		t.Error("empty snapshot must still have usable maps")
	}
}

func TestLoader_CacheFallback(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "snapshot.json")

	// First load succeeds and writes the cache.
	good := &Loader{
		Listings: &stubListings{listings: []model.BrokerListing{
			{Manufacturer: "Grove", Model: "GMK4100L", ModelYear: 2018, CapacityTons: 100, Price: 9e5, SourceNetwork: "net-a"},
		}},
		CachePath: cachePath,
	}
	first := good.Load()
	if !first.ListingsLoaded {
		t.Fatal("expected listings to load")
	}

	// Second load with everything down falls back to the cached snapshot.
	bad := &Loader{
		Listings:  &stubListings{err: fmt.Errorf("feed down")},
		CachePath: cachePath,
	}
	second := bad.Load()
	if len(second.Listings) != 1 || second.Listings[0].Model != "GMK4100L" {
		t.Errorf("expected cached listings, got %+v", second.Listings)
	}
}

func TestYAMLSource_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	trendPath := filepath.Join(dir, "trends.yaml")
	writeFile(t, trendPath, `
segments:
  - segment: crawler-heavy
    growth_rate: 12.5
    demand_drivers: ["wind energy", "data centers"]
    price_trend: rising
    market_size: large
`)
	profilePath := filepath.Join(dir, "profiles.yaml")
	writeFile(t, profilePath, `
profiles:
  - manufacturer: Liebherr
    model: LR 1300
    max_capacity_tons: 300
    working_radius_40ft: 250
    working_radius_80ft: 180
    mobility_score: 0.6
    versatility_score: 0.8
    boom_utilization_score: 0.9
`)
	intelPath := filepath.Join(dir, "intel.yaml")
	writeFile(t, intelPath, `
overall_average_price: 1500000
manufacturers:
  Liebherr:
    average_price: 2100000
    price_low: 800000
    price_high: 5500000
    transaction_count: 42
`)

	src := &YAMLSource{TrendPath: trendPath, ProfilePath: profilePath, IntelPath: intelPath}

	segs, err := src.FetchTrendSegments()
	if err != nil {
		t.Fatalf("trend fetch: %v", err)
	}
	if len(segs) != 1 || segs[0].GrowthRate != 12.5 || len(segs[0].DemandDrivers) != 2 {
		t.Errorf("unexpected segments: %+v", segs)
	}

	profiles, err := src.FetchProfiles()
	if err != nil {
		t.Fatalf("profile fetch: %v", err)
	}
	if len(profiles) != 1 || profiles[0].BoomUtilizationScore != 0.9 {
		t.Errorf("unexpected profiles: %+v", profiles)
	}

	intel, err := src.FetchIntel()
	if err != nil {
		t.Fatalf("intel fetch: %v", err)
	}
	if intel.OverallAveragePrice != 1500000 {
		t.Errorf("unexpected intel: %+v", intel)
	}
	if stats := intel.Manufacturers["Liebherr"]; stats.TransactionCount != 42 {
		t.Errorf("unexpected manufacturer stats: %+v", stats)
	}
}

func TestYAMLSource_MissingFileErrors(t *testing.T) {
	src := &YAMLSource{TrendPath: "does/not/exist.yaml"}
	if _, err := src.FetchTrendSegments(); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestWorkbookSource_ParsesSheetsAndSkipsBadRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listings.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, "IronNetwork"); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	rows := [][]interface{}{
		{"Manufacturer", "Model", "Year", "Capacity_Tons", "Price", "Location", "Features"},
		{"Liebherr", "LR 1300", "2019", "300", "$2,450,000", "Houston, TX", "luffing jib; self-erecting"},
		{"Grove", "GMK4100L", "not-a-year", "100", "900000", "Chicago, IL", ""},
		{"Tadano", "ATF 220G-5", "2017", "220", "1100000", "Miami, FL", ""},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("IronNetwork", cell, &row); err != nil {
			t.Fatalf("write row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	f.Close()

	src := &WorkbookSource{Path: path}
	listings, err := src.FetchListings()
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("expected 2 listings (bad row skipped), got %d", len(listings))
	}
	first := listings[0]
	if first.Price != 2450000 {
		t.Errorf("expected price 2450000, got %.0f", first.Price)
	}
	if first.SourceNetwork != "IronNetwork" {
		t.Errorf("expected sheet name as source network, got %q", first.SourceNetwork)
	}
	if len(first.Features) != 2 {
		t.Errorf("expected 2 features, got %v", first.Features)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
