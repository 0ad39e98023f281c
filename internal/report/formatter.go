package report

import (
	"fmt"
	"strings"
	"time"

	"CraneAppraiser/internal/model"
)

// FormatAppraisal renders one appraisal as a plain-text report for the CLI.
func FormatAppraisal(spec *model.EquipmentSpec, res *model.ValuationResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("CraneAppraiser valuation | %s\n\n", time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Unit: %d %s %s (%s, %.0f t)\n",
		spec.ModelYear, spec.Manufacturer, spec.Model, spec.Category, spec.CapacityTons))
	if spec.OperatingHours > 0 {
		b.WriteString(fmt.Sprintf("Hours: %d\n", spec.OperatingHours))
	}
	if spec.Location != "" {
		b.WriteString(fmt.Sprintf("Location: %s\n", spec.Location))
	}
	b.WriteString("\n")

	// Breakdown
	b.WriteString("Valuation breakdown:\n")
	b.WriteString(fmt.Sprintf("  Replacement cost:  $%s\n", money(res.Breakdown[model.BreakdownReplacementCost])))
	b.WriteString(fmt.Sprintf("  Depreciated base:  $%s (hours adj %+.0f%%)\n",
		money(res.Breakdown[model.BreakdownBaseValue]), res.Breakdown[model.BreakdownHours]*100))
	for _, line := range []struct {
		label, key string
	}{
		{"Trend", model.BreakdownTrend},
		{"Broker", model.BreakdownBroker},
		{"Performance", model.BreakdownPerformance},
		{"Regional", model.BreakdownRegional},
		{"Market intel", model.BreakdownMarketIntel},
	} {
		b.WriteString(fmt.Sprintf("  %-17s %+.1f%%\n", line.label+":", res.Breakdown[line.key]*100))
	}
	b.WriteString("  ─────────────────\n")
	b.WriteString(fmt.Sprintf("  Estimated value:   $%s (confidence %d/100)\n\n", money(res.EstimatedValue), res.ConfidenceScore))

	// Valuation types
	ty := res.Types
	b.WriteString("Valuation types:\n")
	b.WriteString(fmt.Sprintf("  FMV $%s | OLV $%s | FLV $%s\n", money(ty.FairMarketValue), money(ty.OrderlyLiquidation), money(ty.ForcedLiquidation)))
	b.WriteString(fmt.Sprintf("  Net OLV $%s | Net FLV $%s | Insurance $%s\n\n",
		money(ty.NetOrderlyLiquidation), money(ty.NetForcedLiquidation), money(ty.InsuranceReplacementCost)))

	// Scores
	b.WriteString(fmt.Sprintf("Wear score: %.0f/100\n", res.WearScore))
	if spec.AskingPrice > 0 {
		b.WriteString(fmt.Sprintf("Deal score: %d/100 at asking $%s\n", res.DealScore, money(spec.AskingPrice)))
	} else {
		b.WriteString(fmt.Sprintf("Deal score: %d/100 (no asking price)\n", res.DealScore))
	}

	// Comparables
	if len(res.Comparables) > 0 {
		b.WriteString("\nComparable listings:\n")
		for _, c := range res.Comparables {
			b.WriteString(fmt.Sprintf("  %3.0f%%  %d %s %s, %.0f t, $%s (%s)\n",
				c.SimilarityScore, c.ModelYear, c.Manufacturer, c.Model, c.CapacityTons, money(c.Price), c.SourceNetwork))
		}
	}

	// Insights
	if len(res.MarketInsights) > 0 {
		b.WriteString("\nMarket insights:\n")
		for _, in := range res.MarketInsights {
			b.WriteString("  - " + in + "\n")
		}
	}

	return b.String()
}

// money formats a dollar amount with thousands separators.
func money(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
