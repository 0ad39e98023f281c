package refdata

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"CraneAppraiser/internal/model"
)

// WorkbookSource reads broker listings from an .xlsx workbook, one sheet per
// broker network. This matches how networks actually deliver inventory:
// loosely formatted spreadsheet exports. Rows are normalized into typed
// listings here so the engine never sees raw cells; malformed rows are
// skipped with a warning instead of failing the whole load.
type WorkbookSource struct {
	Path string
}

func (s *WorkbookSource) Name() string { return "listings-workbook" }

// Expected header columns, matched case-insensitively.
const (
	colManufacturer = "manufacturer"
	colModel        = "model"
	colYear         = "year"
	colCapacity     = "capacity_tons"
	colPrice        = "price"
	colLocation     = "location"
	colFeatures     = "features"
)

// FetchListings reads every sheet of the workbook. The sheet name becomes
// the listing's source network.
func (s *WorkbookSource) FetchListings() ([]model.BrokerListing, error) {
	if s.Path == "" {
		return nil, fmt.Errorf("no workbook configured")
	}
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", s.Path, err)
	}
	defer f.Close()

	var listings []model.BrokerListing
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			log.Printf("[WARN] read sheet %s: %v, skipped", sheet, err)
			continue
		}
		if len(rows) < 2 {
			continue
		}

		cols := indexColumns(rows[0])
		for i, row := range rows[1:] {
			listing, err := parseListingRow(cols, row)
			if err != nil {
				log.Printf("[WARN] sheet %s row %d: %v, skipped", sheet, i+2, err)
				continue
			}
			listing.SourceNetwork = sheet
			listings = append(listings, listing)
		}
	}
	return listings, nil
}

// indexColumns maps header names to column indexes.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return cols
}

func parseListingRow(cols map[string]int, row []string) (model.BrokerListing, error) {
	cell := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var l model.BrokerListing
	l.Manufacturer = cell(colManufacturer)
	l.Model = cell(colModel)
	l.Location = cell(colLocation)
	if l.Manufacturer == "" && l.Model == "" {
		return l, fmt.Errorf("missing manufacturer and model")
	}

	year, err := strconv.Atoi(cell(colYear))
	if err != nil {
		return l, fmt.Errorf("bad year %q", cell(colYear))
	}
	l.ModelYear = year

	capacity, err := parsePrice(cell(colCapacity))
	if err != nil {
		return l, fmt.Errorf("bad capacity %q", cell(colCapacity))
	}
	l.CapacityTons = capacity

	price, err := parsePrice(cell(colPrice))
	if err != nil {
		return l, fmt.Errorf("bad price %q", cell(colPrice))
	}
	l.Price = price

	if features := cell(colFeatures); features != "" {
		for _, feat := range strings.Split(features, ";") {
			if feat = strings.TrimSpace(feat); feat != "" {
				l.Features = append(l.Features, feat)
			}
		}
	}
	return l, nil
}

// parsePrice accepts spreadsheet-flavored numbers: "$1,250,000" and
// "1250000" both parse.
func parsePrice(s string) (float64, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	if cleaned == "" {
		return 0, fmt.Errorf("empty number")
	}
	return strconv.ParseFloat(cleaned, 64)
}
