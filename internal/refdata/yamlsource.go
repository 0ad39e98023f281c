package refdata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"CraneAppraiser/internal/model"
)

// YAMLSource reads reference tables from local YAML files, one file per
// table. Curated trend, performance, and intelligence data ships this way;
// listings come from the workbook or API sources.
type YAMLSource struct {
	TrendPath   string
	ProfilePath string
	IntelPath   string
}

func (s *YAMLSource) Name() string { return "yaml-files" }

// FetchTrendSegments reads the buying-trend segment table.
func (s *YAMLSource) FetchTrendSegments() ([]model.BuyingTrendSegment, error) {
	var doc struct {
		Segments []model.BuyingTrendSegment `yaml:"segments"`
	}
	if err := readYAML(s.TrendPath, &doc); err != nil {
		return nil, err
	}
	return doc.Segments, nil
}

// FetchProfiles reads the performance-profile table.
func (s *YAMLSource) FetchProfiles() ([]model.PerformanceProfile, error) {
	var doc struct {
		Profiles []model.PerformanceProfile `yaml:"profiles"`
	}
	if err := readYAML(s.ProfilePath, &doc); err != nil {
		return nil, err
	}
	return doc.Profiles, nil
}

// FetchIntel reads the aggregate market-transaction table.
func (s *YAMLSource) FetchIntel() (model.MarketIntelligence, error) {
	var intel model.MarketIntelligence
	if err := readYAML(s.IntelPath, &intel); err != nil {
		return model.MarketIntelligence{}, err
	}
	return intel, nil
}

func readYAML(path string, out any) error {
	if path == "" {
		return fmt.Errorf("no file configured")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
