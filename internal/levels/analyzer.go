package levels

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/quangvo55/spx-levels/internal/analysis"
	"github.com/quangvo55/spx-levels/internal/model"
)

// Params tunes the analysis pipeline. Zero values are replaced by defaults.
type Params struct {
	SwingOrder     int
	SmoothWindow   int
	FibPairs       int
	VolumeBins     int
	VolumeClusters int
	PivotWindow    int
	MAWindows      []int
	NearbyPct      float64
	GroupThreshold float64
	VolMAWindow    int
}

// DefaultParams returns the standard pipeline configuration.
func DefaultParams() Params {
	return Params{
		SwingOrder:     analysis.DefaultSwingOrder,
		SmoothWindow:   analysis.DefaultSmoothWindow,
		FibPairs:       analysis.DefaultFibPairs,
		VolumeBins:     analysis.DefaultVolumeBins,
		VolumeClusters: analysis.DefaultVolumeClusters,
		PivotWindow:    analysis.DefaultPivotWindow,
		MAWindows:      analysis.DefaultMAWindows,
		NearbyPct:      analysis.DefaultNearbyPct,
		GroupThreshold: DefaultGroupThreshold,
		VolMAWindow:    analysis.DefaultVolatilityMAWindow,
	}
}

// Analyzer runs the full level-detection pipeline: swing detection feeds the
// Fibonacci generator, the raw series feeds the remaining generators, and the
// aggregator merges everything into ranked support and resistance.
type Analyzer struct {
	params Params
}

// NewAnalyzer creates an Analyzer, filling unset params with defaults.
func NewAnalyzer(p Params) *Analyzer {
	d := DefaultParams()
	if p.SwingOrder <= 0 {
		p.SwingOrder = d.SwingOrder
	}
	if p.SmoothWindow <= 0 {
		p.SmoothWindow = d.SmoothWindow
	}
	if p.FibPairs <= 0 {
		p.FibPairs = d.FibPairs
	}
	if p.VolumeBins <= 0 {
		p.VolumeBins = d.VolumeBins
	}
	if p.VolumeClusters <= 0 {
		p.VolumeClusters = d.VolumeClusters
	}
	if p.PivotWindow <= 0 {
		p.PivotWindow = d.PivotWindow
	}
	if len(p.MAWindows) == 0 {
		p.MAWindows = d.MAWindows
	}
	if p.NearbyPct <= 0 {
		p.NearbyPct = d.NearbyPct
	}
	if p.GroupThreshold <= 0 {
		p.GroupThreshold = d.GroupThreshold
	}
	if p.VolMAWindow <= 0 {
		p.VolMAWindow = d.VolMAWindow
	}
	return &Analyzer{params: p}
}

// Analyze computes ranked technical levels for the series. The volatility
// series is optional; when nil or too short the result simply carries no
// note. Generators absorb their own data shortfalls and contribute empty
// output, so a thin series degrades coverage instead of failing the run.
func (a *Analyzer) Analyze(series, volatility *model.PriceSeries) *model.AnalysisResult {
	p := a.params
	currentPrice := series.CurrentPrice()

	swingHighs, swingLows := analysis.DetectSwings(series, p.SwingOrder, p.SmoothWindow)
	log.Debugf("detected %d swing highs, %d swing lows", len(swingHighs), len(swingLows))

	profile := analysis.BuildVolumeProfile(series, p.VolumeBins)

	volumeLevels := analysis.VolumeClusters(profile, p.VolumeClusters)
	psychLevels := analysis.PsychologicalLevels(currentPrice, p.NearbyPct)
	pivotSupport, pivotResistance := analysis.RecentPivots(series, p.PivotWindow)
	maLevels := analysis.MovingAverageLevels(series, p.MAWindows)
	fibLevels := analysis.FibonacciLevels(swingHighs, swingLows, p.FibPairs)

	all := Collect(volumeLevels, psychLevels, pivotSupport, pivotResistance, maLevels, fibLevels)
	log.Debugf("collected %d raw levels", len(all))

	groups := Group(all, p.GroupThreshold)
	support, resistance := Classify(groups, currentPrice)
	RankByStrength(support)
	RankByStrength(resistance)

	return &model.AnalysisResult{
		Symbol:         series.Symbol,
		CurrentPrice:   currentPrice,
		Support:        support,
		Resistance:     resistance,
		Groups:         groups,
		SwingHighs:     swingHighs,
		SwingLows:      swingLows,
		Profile:        profile,
		VolatilityNote: analysis.VolatilityNote(volatility, p.VolMAWindow),
		GeneratedAt:    time.Now(),
	}
}
