package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/quangvo55/spx-levels/internal/levels"
	"github.com/quangvo55/spx-levels/internal/model"
)

// DefaultTopLevels caps how many levels per side the report lists.
const DefaultTopLevels = 8

// FormatLevelsReport renders the analysis result as a plain-text report:
// resistance first, then support, each limited to topN strongest levels with
// a star strength indicator and the deduplicated list of contributing
// sources.
func FormatLevelsReport(result *model.AnalysisResult, topN int) string {
	if topN <= 0 {
		topN = DefaultTopLevels
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Technical Levels Report - %s\n", result.GeneratedAt.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Symbol: %s\n", result.Symbol))
	b.WriteString(fmt.Sprintf("Current Price: %.2f\n\n", result.CurrentPrice))

	if result.VolatilityNote != "" {
		b.WriteString(fmt.Sprintf("VIX Analysis: %s\n\n", result.VolatilityNote))
	}

	b.WriteString("Resistance Levels:\n")
	writeLevelTable(&b, result.Resistance, topN)
	b.WriteString("\nSupport Levels:\n")
	writeLevelTable(&b, result.Support, topN)

	b.WriteString("\nStrength Indicator: * (weak) to ***** (very strong)\n")
	return b.String()
}

func writeLevelTable(b *strings.Builder, groups []model.LevelGroup, topN int) {
	if len(groups) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	if len(groups) > topN {
		groups = groups[:topN]
	}

	table := tablewriter.NewWriter(b)
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, g := range groups {
		table.Append([]string{
			fmt.Sprintf("%.2f", g.Price),
			levels.StrengthStars(g.Strength),
			strings.Join(uniqueSources(g.Sources), ", "),
		})
	}
	table.Render()
}

// uniqueSources deduplicates while preserving first-seen order, so the same
// generator contributing several members is listed once.
func uniqueSources(sources []string) []string {
	seen := make(map[string]bool, len(sources))
	var out []string
	for _, s := range sources {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// FormatSwingReport renders the swing points used for Fibonacci retracement,
// most recent first.
func FormatSwingReport(result *model.AnalysisResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Swing Points Analysis - %s\n", result.GeneratedAt.Format("2006-01-02")))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	b.WriteString("SWING HIGHS (used for Fibonacci calculations)\n")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	writeSwings(&b, result.SwingHighs, "No significant swing highs identified in the current data")

	b.WriteString("\nSWING LOWS (used for Fibonacci calculations)\n")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	writeSwings(&b, result.SwingLows, "No significant swing lows identified in the current data")

	b.WriteString("\nNote: Fibonacci retracements are calculated using combinations\n")
	b.WriteString("of these swing highs and lows, prioritizing recent swings.\n")
	return b.String()
}

func writeSwings(b *strings.Builder, swings []model.SwingPoint, emptyMsg string) {
	if len(swings) == 0 {
		b.WriteString(emptyMsg + "\n")
		return
	}
	sorted := make([]model.SwingPoint, len(swings))
	copy(sorted, swings)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time.After(sorted[j].Time) })
	for _, s := range sorted {
		b.WriteString(fmt.Sprintf("%s: %.2f\n", s.Time.Format("2006-01-02"), s.Price))
	}
}
